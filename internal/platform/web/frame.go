package web

import (
	"fmt"
	"html"
	"strings"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

// Browser grids larger than this are clamped.
const (
	MaxCols = 400
	MaxRows = 200
)

// clampSize bounds a client-reported grid. ok is false when either side is
// not positive.
func clampSize(cols, rows int) (w, h int, ok bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return min(cols, MaxCols), min(rows, MaxRows), true
}

// RenderHTML converts a Screen buffer to preformatted HTML. Each color run
// becomes one span; the page stylesheet maps c<N> classes to colors.
func RenderHTML(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.ColorRuns(y, func(c core.Color, text string) {
			text = html.EscapeString(text)
			if c == core.ColorDefault {
				sb.WriteString(text)
				return
			}
			fmt.Fprintf(&sb, `<span class="c%d">%s</span>`, c, text)
		})
	}
	return sb.String()
}

// browserKeys maps KeyboardEvent.key values to router key names.
var browserKeys = map[string]string{
	"ArrowUp":    "up",
	"ArrowDown":  "down",
	"ArrowLeft":  "left",
	"ArrowRight": "right",
	"Enter":      "enter",
	"Escape":     "esc",
	"Tab":        "tab",
	" ":          " ",
	"Spacebar":   " ",
}

// RouterKey translates a browser key name. Single characters are lowercased
// so shifted letters still match.
func RouterKey(key string) string {
	if k, ok := browserKeys[key]; ok {
		return k
	}
	if len([]rune(key)) == 1 {
		return strings.ToLower(key)
	}
	return ""
}
