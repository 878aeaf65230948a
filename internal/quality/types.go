// Package quality provides the core data-quality model: the metrics and
// issue records supplied by data producers, the confidence classifier, and
// the issue severity mapper.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package quality

// Metrics holds the quality sub-metrics for one dataset refresh.
// All ratio fields are expected in [0,1]; ValidateMetrics enforces that at
// the data-producing boundary. A Metrics value is read-only input for
// exactly one render cycle.
type Metrics struct {
	Completeness       float64  `json:"completeness" yaml:"completeness"`
	Accuracy           float64  `json:"accuracy" yaml:"accuracy"`
	Consistency        float64  `json:"consistency" yaml:"consistency"`
	ConfidenceLevel    float64  `json:"confidence_level" yaml:"confidence_level"`
	MissingFields      []string `json:"missing_fields" yaml:"missing_fields"`
	EstimatedFields    []string `json:"estimated_fields" yaml:"estimated_fields"`
	TotalFieldsChecked int      `json:"total_fields_checked" yaml:"total_fields_checked"`
	ValidFields        int      `json:"valid_fields" yaml:"valid_fields"`
}

// Issue describes a single quality problem found upstream.
type Issue struct {
	Type             string   `json:"type" yaml:"type"`
	Description      string   `json:"description" yaml:"description"`
	Impact           string   `json:"impact" yaml:"impact"`
	AffectedFeatures []string `json:"affected_features" yaml:"affected_features"`
}

// Style token constants. Tokens are abstract color-family identifiers;
// rendering code maps them to actual terminal colors.
const (
	TokenGreen   = "green"
	TokenYellow  = "yellow"
	TokenRed     = "red"
	TokenNeutral = "neutral"
)

// Impact level constants.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Issue type constants. The vocabulary is open: producers may emit other
// types and the view renders them without special handling.
const (
	IssueMissingData   = "missing_data"
	IssueEstimatedData = "estimated_data"
)
