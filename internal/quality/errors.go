package quality

import "fmt"

// InvalidConfidenceError reports a ratio field outside [0,1].
type InvalidConfidenceError struct {
	Field string
	Value float64
}

func (e *InvalidConfidenceError) Error() string {
	return fmt.Sprintf("%s must be in [0,1], got %g", e.Field, e.Value)
}

// UnknownImpactError reports an issue impact outside {high, medium, low}.
type UnknownImpactError struct {
	Impact string
}

func (e *UnknownImpactError) Error() string {
	return fmt.Sprintf("unknown impact level %q (want high, medium, or low)", e.Impact)
}

// FieldCountError reports valid_fields exceeding total_fields_checked.
type FieldCountError struct {
	Valid int
	Total int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("valid_fields (%d) exceeds total_fields_checked (%d)", e.Valid, e.Total)
}
