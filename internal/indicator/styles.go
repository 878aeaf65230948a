package indicator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/dqview/internal/quality"
)

// palette maps abstract style tokens to terminal colors. This is the only
// place token names meet concrete colors.
var palette = map[string]lipgloss.Color{
	quality.TokenGreen:   lipgloss.Color("10"),
	quality.TokenYellow:  lipgloss.Color("3"),
	quality.TokenRed:     lipgloss.Color("9"),
	quality.TokenNeutral: lipgloss.Color("7"),
}

// tokenStyle returns the foreground style for a token. Unknown tokens get
// the neutral color rather than an unstyled default.
func tokenStyle(token string) lipgloss.Style {
	color, ok := palette[token]
	if !ok {
		color = palette[quality.TokenNeutral]
	}
	return lipgloss.NewStyle().Foreground(color)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
