package typeverify

// ReportFunc receives the outcome of a single comparison. expected and actual
// are only meaningful when matched is false.
type ReportFunc func(matched bool, value any, expected, actual Shape)

// CompareFunc checks one value against a list of descriptors.
// Verify is the default implementation.
type CompareFunc func(value any, descriptors []Descriptor, report ReportFunc) bool

// Verify reports whether value matches at least one descriptor. An empty list
// accepts every value. When report is non-nil it is called exactly once
// before Verify returns.
func Verify(value any, descriptors []Descriptor, report ReportFunc) bool {
	matched := len(descriptors) == 0
	for _, d := range descriptors {
		if d.Match(value) {
			matched = true
			break
		}
	}

	if report != nil {
		if matched {
			report(true, value, Shape{}, Shape{})
		} else {
			report(false, value, ExpectedShape(descriptors), ActualShape(value))
		}
	}
	return matched
}
