package rulefile

import (
	"errors"
	"fmt"
)

var (
	ErrParsingCancelled  = errors.New("suite parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse suite YAML")
	ErrFailedToReadFile  = errors.New("failed to read suite file")
	ErrNoCases           = errors.New("suite has no cases")
	ErrInvalidRules      = errors.New("invalid rules")
	ErrInvalidArgs       = errors.New("invalid args")
	ErrUnknownInstance   = errors.New("unknown instance type")
	ErrUnknownValueTag   = errors.New("unknown value tag")
	ErrInvalidExpect     = errors.New("expect must be pass or fail")
)

// NodeError locates a decoding failure in the YAML source.
type NodeError struct {
	Case   string
	Line   int
	Column int
	Err    error
}

func (e *NodeError) Error() string {
	if e.Case == "" {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("case %q: line %d, column %d: %v", e.Case, e.Line, e.Column, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
