package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles. ApplyTheme rebuilds them.
var (
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	ResultText  lipgloss.Style
	ErrorText   lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Highlight   lipgloss.Style
	MetricLabel lipgloss.Style
	KeyHint     lipgloss.Style
	SparkHigh   lipgloss.Style
	SparkMid    lipgloss.Style
	SparkLow    lipgloss.Style
)

func init() {
	applyTheme(ThemeNeon)
}

func applyTheme(t Theme) {
	current = t

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	ResultText = lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)
	ErrorText = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	Success = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	Warning = lipgloss.NewStyle().Bold(true).Foreground(t.Warning)
	Highlight = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Background)
	MetricLabel = lipgloss.NewStyle().Foreground(t.Label)
	KeyHint = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)

	SparkHigh = lipgloss.NewStyle().Foreground(t.Success)
	SparkMid = lipgloss.NewStyle().Foreground(t.Warning)
	SparkLow = lipgloss.NewStyle().Foreground(t.Error)
}

// Banner renders a program title with a one-line hint underneath.
func Banner(title, hint string) string {
	body := GradientText(title, current.Primary, current.Accent)
	if hint != "" {
		body += "\n" + Subtle.Render(hint)
	}
	return Panel.Render(body)
}

// GradientText colours each rune of text along a gradient between two hex
// colours.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// ProgressBar renders a bar filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent > 0.6 {
		return SparkHigh.Render(bar)
	} else if percent > 0.3 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

// SparklineChart renders values as a one-line chart of at most width
// cells.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		if norm > 0.7 {
			result.WriteString(SparkHigh.Render(c))
		} else if norm > 0.3 {
			result.WriteString(SparkMid.Render(c))
		} else {
			result.WriteString(SparkLow.Render(c))
		}
	}
	return result.String()
}

// Separator draws a decorated horizontal rule.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
