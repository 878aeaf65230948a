// Package indicator renders a data-quality summary with an expandable
// detail panel. Rendering is pure: every call recomputes tiers, labels,
// and style tokens from the supplied metrics and issues. The only mutable
// state an Indicator owns is its expand/collapse flag.
package indicator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/dotcommander/dqview/internal/device"
	"github.com/dotcommander/dqview/internal/quality"
)

// ToggleFunc is notified after every expand/collapse transition with the
// new state. It is fire-and-forget: the view never waits on it.
type ToggleFunc func(expanded bool)

// Indicator is one quality-indicator instance bound to a metrics record.
type Indicator struct {
	metrics  quality.Metrics
	issues   []quality.Issue
	expanded bool
	extra    lipgloss.Style
	hasExtra bool
	onToggle ToggleFunc
	viewport device.Viewport
}

// Option configures an Indicator at construction time.
type Option func(*Indicator)

// WithIssues attaches the quality issue list.
func WithIssues(issues []quality.Issue) Option {
	return func(in *Indicator) { in.issues = issues }
}

// WithDetails sets the initial expansion state.
func WithDetails(expanded bool) Option {
	return func(in *Indicator) { in.expanded = expanded }
}

// WithStyle merges a caller-supplied style onto the container's computed
// style. Both apply: the caller's style is additive, never a replacement.
func WithStyle(s lipgloss.Style) Option {
	return func(in *Indicator) {
		in.extra = s
		in.hasExtra = true
	}
}

// WithToggleFunc registers the expand/collapse notification callback.
func WithToggleFunc(fn ToggleFunc) Option {
	return func(in *Indicator) { in.onToggle = fn }
}

// WithViewport overrides the detected viewport. Layout density only;
// tier and label output is identical across viewports.
func WithViewport(v device.Viewport) Option {
	return func(in *Indicator) { in.viewport = v }
}

// New creates an Indicator for one metrics record. The record is treated
// as read-only; the view never mutates it.
func New(metrics quality.Metrics, opts ...Option) *Indicator {
	in := &Indicator{
		metrics:  metrics,
		viewport: device.DefaultViewport,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Expanded reports whether the detail panel is currently shown.
func (in *Indicator) Expanded() bool {
	return in.expanded
}

// Toggle flips the expand/collapse state and notifies the toggle callback
// with the post-transition value.
func (in *Indicator) Toggle() {
	in.expanded = !in.expanded
	in.notify(in.expanded)
}

// SetExpanded moves to the given state. A same-value call is a no-op and
// does not notify, so repeated invocations in one direction are idempotent.
func (in *Indicator) SetExpanded(expanded bool) {
	if in.expanded == expanded {
		return
	}
	in.expanded = expanded
	in.notify(expanded)
}

// notify invokes the toggle callback. A panicking callback must not take
// the render loop down with it, so panics stop here.
func (in *Indicator) notify(expanded bool) {
	if in.onToggle == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("details toggle callback panicked")
		}
	}()
	in.onToggle(expanded)
}

// Render produces the full indicator: the one-line summary, and the detail
// panel when expanded.
func (in *Indicator) Render() string {
	var b strings.Builder

	b.WriteString(in.renderSummary())
	if in.expanded {
		b.WriteString("\n")
		b.WriteString(in.renderDetails())
	}

	container := lipgloss.NewStyle()
	if in.hasExtra {
		container = container.Inherit(in.extra)
	}
	return container.Render(strings.TrimRight(b.String(), "\n"))
}

func (in *Indicator) renderSummary() string {
	var b strings.Builder

	tier := quality.Classify(in.metrics.ConfidenceLevel)
	pct := quality.Percent(in.metrics.ConfidenceLevel)

	header := fmt.Sprintf("Data Quality: %d%%", pct)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("  ")
	b.WriteString(tokenStyle(tier.Token).Render(tier.Label))
	b.WriteString("\n")

	quick := []struct {
		value   float64
		caption string
	}{
		{in.metrics.Completeness, "Complete"},
		{in.metrics.Accuracy, "Accurate"},
		{in.metrics.Consistency, "Consistent"},
	}
	sep := "   "
	if in.viewport.Narrow() {
		sep = "\n  "
	}
	parts := make([]string, len(quick))
	for i, q := range quick {
		parts[i] = fmt.Sprintf("%d%% %s", quality.Percent(q.value), q.caption)
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(parts, sep))
	b.WriteString("\n")

	hint := "Show details"
	if in.expanded {
		hint = "Hide details"
	}
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("▸ " + hint))
	b.WriteString("\n")

	return b.String()
}

func (in *Indicator) renderDetails() string {
	var b strings.Builder

	b.WriteString(section(true, "Detailed Metrics", func() string {
		return fmt.Sprintf("  Fields checked: %d\n  Valid fields: %d\n",
			in.metrics.TotalFieldsChecked, in.metrics.ValidFields)
	}))

	b.WriteString(section(len(in.metrics.MissingFields) > 0, "Missing Fields", func() string {
		return fieldList(in.metrics.MissingFields)
	}))

	b.WriteString(section(len(in.metrics.EstimatedFields) > 0, "Estimated Fields", func() string {
		return fieldList(in.metrics.EstimatedFields)
	}))

	b.WriteString(section(len(in.issues) > 0, "Quality Issues", func() string {
		return in.renderIssues()
	}))

	b.WriteString(section(true, "Quality Breakdown", func() string {
		return in.renderBreakdown()
	}))

	return b.String()
}

func (in *Indicator) renderIssues() string {
	var b strings.Builder
	for _, issue := range in.issues {
		// Unknown impact levels already failed boundary validation;
		// render the neutral fallback here rather than dropping the issue.
		sev, _ := quality.MapSeverity(issue.Impact)
		b.WriteString("  ")
		b.WriteString(tokenStyle(sev.Token).Render(sev.Label))
		b.WriteString("  ")
		b.WriteString(issue.Description)
		b.WriteString("\n")
		if len(issue.AffectedFeatures) > 0 {
			b.WriteString("    Affects: ")
			b.WriteString(strings.Join(issue.AffectedFeatures, ", "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (in *Indicator) renderBreakdown() string {
	rows := []struct {
		name  string
		value float64
	}{
		{"Completeness", in.metrics.Completeness},
		{"Accuracy", in.metrics.Accuracy},
		{"Consistency", in.metrics.Consistency},
	}

	width := 20
	if in.viewport.Narrow() {
		width = 10
	}

	var b strings.Builder
	for _, row := range rows {
		pct := quality.Percent(row.value)
		fmt.Fprintf(&b, "  %-13s %s %d%%\n", row.name+":", bar(pct, width), pct)
	}
	return b.String()
}
