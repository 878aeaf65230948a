package quality

// ValidateMetrics checks a Metrics record at the data-producing boundary.
// The policy for out-of-range values is reject, not clamp: producers are
// expected to emit clean records, and silently repairing them would hide
// upstream bugs. All violations are returned, not just the first.
func ValidateMetrics(m Metrics) []error {
	var errs []error

	ratios := []struct {
		field string
		value float64
	}{
		{"completeness", m.Completeness},
		{"accuracy", m.Accuracy},
		{"consistency", m.Consistency},
		{"confidence_level", m.ConfidenceLevel},
	}
	for _, r := range ratios {
		if r.value < 0 || r.value > 1 {
			errs = append(errs, &InvalidConfidenceError{Field: r.field, Value: r.value})
		}
	}

	if m.ValidFields > m.TotalFieldsChecked {
		errs = append(errs, &FieldCountError{Valid: m.ValidFields, Total: m.TotalFieldsChecked})
	}

	return errs
}

// ValidateIssues checks that every issue carries a recognized impact level.
func ValidateIssues(issues []Issue) []error {
	var errs []error
	for _, issue := range issues {
		if _, err := MapSeverity(issue.Impact); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
