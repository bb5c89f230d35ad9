package tubebank

type DiagnosticCode string

const (
	ReynoldsTooSmall   DiagnosticCode = "reynolds_too_small"
	ReynoldsTooLarge   DiagnosticCode = "reynolds_too_large"
	AlignedInefficient DiagnosticCode = "aligned_inefficient"
)

// Diagnostic is a non-fatal advisory raised while selecting the correlation.
// The calculation continues with the single-cylinder fallback.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return string(d.Code) + ": " + d.Message
}
