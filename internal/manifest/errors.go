package manifest

import "fmt"

type CodingErrorReason string

const (
	// CodingErrorInvalidType is reported when a manifest value cannot be
	// decoded from its source representation.
	CodingErrorInvalidType CodingErrorReason = "invalid_type"
)

// CodingError is returned by the YAML decoders of this package.
type CodingError struct {
	Reason CodingErrorReason
	Detail string
	Line   int
}

func (e *CodingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Reason, e.Line, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func invalidType(line int, format string, args ...any) *CodingError {
	return &CodingError{
		Reason: CodingErrorInvalidType,
		Detail: fmt.Sprintf(format, args...),
		Line:   line,
	}
}
