package quality

// Severity is the display mapping for an issue impact level.
type Severity struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

var severities = map[string]Severity{
	ImpactHigh:   {Label: "High impact", Token: TokenRed},
	ImpactMedium: {Label: "Medium impact", Token: TokenYellow},
	ImpactLow:    {Label: "Low impact", Token: TokenGreen},
}

// MapSeverity maps an issue impact level to its label and style token.
// Unknown impact values return an UnknownImpactError alongside a neutral
// fallback severity, so callers can still render something sane instead of
// crashing or silently mis-styling.
func MapSeverity(impact string) (Severity, error) {
	if s, ok := severities[impact]; ok {
		return s, nil
	}
	return Severity{Label: "Unknown impact", Token: TokenNeutral}, &UnknownImpactError{Impact: impact}
}
