package domain

// DiagnosticError is a user-facing failure with optional debugging detail.
// Unwrap yields Kind, so errors.Is works against the sentinels in errors.go.
type DiagnosticError struct {
	Kind    error
	Message string
	Detail  string
}

func (e *DiagnosticError) Error() string {
	return e.Message
}

func (e *DiagnosticError) Unwrap() error {
	return e.Kind
}
