package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Label records the verified function's label under the key "label".
// An empty label yields an empty Attr.
func Label(label string) slog.Attr {
	if label == "" {
		return slog.Attr{}
	}
	return slog.String("label", label)
}

// Position records an argument position under the key "position".
func Position(p int) slog.Attr {
	return slog.Int("position", p)
}

// Missing records whether the failing argument was absent.
func Missing(missing bool) slog.Attr {
	return slog.Bool("missing", missing)
}

// Expected records the expected type shape under the key "expected".
func Expected(shape string) slog.Attr {
	return slog.String("expected", shape)
}

// Actual records the actual type shape under the key "actual".
func Actual(shape string) slog.Attr {
	return slog.String("actual", shape)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Suite records a suite file path under the key "suite".
func Suite(path string) slog.Attr {
	return slog.String("suite", path)
}

// Case records a case name under the key "case".
func Case(name string) slog.Attr {
	return slog.String("case", name)
}
