package report

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError is one contract violation found in a quality report.
type ValidationError struct {
	File     string `json:"file"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Validator checks raw report data against the embedded CUE schema before
// any Go struct sees it. This is the data-producing boundary: the view
// downstream assumes validated input.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	loaded bool
}

// NewValidator compiles the embedded report schema.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/report.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("report.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling report schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath("#Report"))
	if !def.Exists() {
		return nil, fmt.Errorf("report schema has no #Report definition")
	}

	return &Validator{ctx: ctx, schema: def, loaded: true}, nil
}

// Validate unifies raw report data with the schema and returns every
// violation. A nil slice means the data conforms.
func (v *Validator) Validate(file string, data map[string]any) []ValidationError {
	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []ValidationError{{File: file, Message: err.Error(), Severity: "error"}}
	}

	unified := v.schema.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractCUEErrors(file, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractCUEErrors(file, err)
	}
	return nil
}

// extractCUEErrors flattens a CUE error into one ValidationError per
// underlying violation.
func extractCUEErrors(file string, err error) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		out = append(out, ValidationError{
			File:     file,
			Message:  e.Error(),
			Severity: "error",
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{File: file, Message: err.Error(), Severity: "error"})
	}
	return out
}
