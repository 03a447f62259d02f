package rulefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/argverify"
	"github.com/dmitrymomot/argverify/pkg/typeverify"
)

// Expectation is the outcome a case is expected to produce.
type Expectation string

const (
	ExpectPass Expectation = "pass"
	ExpectFail Expectation = "fail"
)

// Case is one rule spec plus one argument list.
type Case struct {
	Name     string
	Label    string
	Rules    argverify.RuleSpec
	Args     []any
	Expect   Expectation
	Position *int
}

// Suite is a decoded suite file.
type Suite struct {
	Path  string
	Cases []Case
}

type rawSuite struct {
	Cases []rawCase `yaml:"cases"`
}

type rawCase struct {
	Name     string    `yaml:"name"`
	Label    string    `yaml:"label"`
	Rules    yaml.Node `yaml:"rules"`
	Args     yaml.Node `yaml:"args"`
	Expect   string    `yaml:"expect"`
	Position *int      `yaml:"position"`
}

// Parser decodes suite files. Instance descriptors in rules refer to Go types
// by the names registered on the parser.
type Parser struct {
	types  map[string]reflect.Type
	strict bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithInstanceType registers t under name for {instance: name} descriptors.
// Nil types are ignored.
func WithInstanceType(name string, t reflect.Type) ParserOption {
	return func(p *Parser) {
		if name != "" && t != nil {
			p.types[name] = t
		}
	}
}

// WithStrictRules rejects malformed rule specs at parse time instead of
// letting the verifier truncate them.
func WithStrictRules() ParserOption {
	return func(p *Parser) { p.strict = true }
}

// NewParser creates a Parser that knows the builtin value types,
// time.Time, regexp.Regexp, uuid.UUID and error.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		types: map[string]reflect.Type{
			"string":         reflect.TypeFor[string](),
			"int":            reflect.TypeFor[int](),
			"float64":        reflect.TypeFor[float64](),
			"bool":           reflect.TypeFor[bool](),
			"[]any":          reflect.TypeFor[[]any](),
			"map[string]any": reflect.TypeFor[map[string]any](),
			"error":          reflect.TypeFor[error](),
			"time.Time":      reflect.TypeFor[time.Time](),
			"regexp.Regexp":  reflect.TypeFor[regexp.Regexp](),
			"uuid.UUID":      reflect.TypeFor[uuid.UUID](),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads and decodes the suite at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	suite, err := p.Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	suite.Path = path
	return suite, nil
}

// Parse decodes suite YAML.
func (p *Parser) Parse(ctx context.Context, data []byte) (*Suite, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var raw rawSuite
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(raw.Cases) == 0 {
		return nil, ErrNoCases
	}

	suite := &Suite{Cases: make([]Case, 0, len(raw.Cases))}
	for i := range raw.Cases {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}
		c, err := p.decodeCase(i, &raw.Cases[i])
		if err != nil {
			return nil, err
		}
		suite.Cases = append(suite.Cases, c)
	}
	return suite, nil
}

func (p *Parser) decodeCase(i int, rc *rawCase) (Case, error) {
	c := Case{
		Name:     rc.Name,
		Label:    rc.Label,
		Position: rc.Position,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("case-%d", i+1)
	}

	d := caseDecoder{parser: p, name: c.Name}

	switch strings.ToLower(rc.Expect) {
	case "", string(ExpectPass):
		c.Expect = ExpectPass
	case string(ExpectFail):
		c.Expect = ExpectFail
	default:
		return Case{}, &NodeError{Case: c.Name, Err: fmt.Errorf("%w: %q", ErrInvalidExpect, rc.Expect)}
	}

	rules, err := d.rules(&rc.Rules)
	if err != nil {
		return Case{}, err
	}
	if p.strict {
		if _, err := argverify.NormalizeStrict(rules); err != nil {
			return Case{}, d.errorf(&rc.Rules, ErrInvalidRules, "%v", err)
		}
	}
	c.Rules = rules

	args, err := d.args(&rc.Args)
	if err != nil {
		return Case{}, err
	}
	c.Args = args

	return c, nil
}

type caseDecoder struct {
	parser *Parser
	name   string
}

func (d caseDecoder) errorf(n *yaml.Node, kind error, format string, a ...any) error {
	return &NodeError{
		Case:   d.name,
		Line:   n.Line,
		Column: n.Column,
		Err:    fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...)),
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		default:
			return n
		}
	}
	return n
}

func (d caseDecoder) rules(n *yaml.Node) (argverify.RuleSpec, error) {
	n = resolve(n)
	if n == nil || n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, ErrInvalidRules, "rules must be a sequence")
	}

	spec := make(argverify.RuleSpec, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		switch {
		case item.Kind == yaml.SequenceNode:
			rs, err := d.ruleSet(item)
			if err != nil {
				return nil, err
			}
			spec = append(spec, rs)

		case item.Kind == yaml.ScalarNode && item.ShortTag() == "!!int":
			var count int
			if err := item.Decode(&count); err != nil {
				return nil, d.errorf(item, ErrInvalidRules, "repeat count: %v", err)
			}
			spec = append(spec, argverify.Repeat(count))

		default:
			return nil, d.errorf(item, ErrInvalidRules, "element must be a list of types or a repeat count")
		}
	}
	return spec, nil
}

func (d caseDecoder) ruleSet(n *yaml.Node) (argverify.RuleSet, error) {
	rs := make(argverify.RuleSet, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		switch item.Kind {
		case yaml.ScalarNode:
			tag, err := typeverify.ParseTag(item.Value)
			if err != nil {
				return nil, d.errorf(item, ErrInvalidRules, "%v", err)
			}
			rs = append(rs, typeverify.TypeOf(tag))

		case yaml.MappingNode:
			var ref struct {
				Instance string `yaml:"instance"`
			}
			if err := item.Decode(&ref); err != nil {
				return nil, d.errorf(item, ErrInvalidRules, "%v", err)
			}
			t, ok := d.parser.types[ref.Instance]
			if !ok {
				return nil, d.errorf(item, ErrUnknownInstance, "%q", ref.Instance)
			}
			rs = append(rs, typeverify.InstanceOfType(t))

		default:
			return nil, d.errorf(item, ErrInvalidRules, "descriptor must be a type name or {instance: name}")
		}
	}
	return rs, nil
}

func (d caseDecoder) args(n *yaml.Node) ([]any, error) {
	n = resolve(n)
	if n == nil || n.Kind == 0 {
		return []any{}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, ErrInvalidArgs, "args must be a sequence")
	}

	args := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := d.value(item)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// value decodes one argument. Beyond plain YAML it understands the local tags
// !regexp, !date, !func, !error, !uuid and !undefined.
func (d caseDecoder) value(n *yaml.Node) (any, error) {
	n = resolve(n)

	switch n.Kind {
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := d.value(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil

	case yaml.ScalarNode:
		return d.scalar(n)

	default:
		return nil, d.errorf(n, ErrInvalidArgs, "unsupported node")
	}
}

func (d caseDecoder) scalar(n *yaml.Node) (any, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := d.decode(n, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int
		if err := d.decode(n, &i); err != nil {
			return nil, err
		}
		return i, nil
	case "!!float":
		var f float64
		if err := d.decode(n, &f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!str":
		return n.Value, nil
	case "!!timestamp", "!date":
		for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
			if t, err := time.Parse(layout, n.Value); err == nil {
				return t, nil
			}
		}
		return nil, d.errorf(n, ErrInvalidArgs, "invalid date %q", n.Value)
	case "!regexp":
		re, err := regexp.Compile(n.Value)
		if err != nil {
			return nil, d.errorf(n, ErrInvalidArgs, "%v", err)
		}
		return re, nil
	case "!func":
		return func() {}, nil
	case "!error":
		return errors.New(n.Value), nil
	case "!uuid":
		id, err := uuid.Parse(n.Value)
		if err != nil {
			return nil, d.errorf(n, ErrInvalidArgs, "%v", err)
		}
		return id, nil
	case "!undefined":
		return typeverify.Undefined, nil
	default:
		return nil, d.errorf(n, ErrUnknownValueTag, "%q", tag)
	}
}

func (d caseDecoder) decode(n *yaml.Node, out any) error {
	if err := n.Decode(out); err != nil {
		return d.errorf(n, ErrInvalidArgs, "%v", err)
	}
	return nil
}
