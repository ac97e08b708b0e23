package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/leaderboard"
	"github.com/vovakirdan/erika-arcade/internal/multiplayer"
)

// OverlayInfo carries the surface-side facts the overlays show.
type OverlayInfo struct {
	Best    int  // stored best for the mode, 0 if unknown
	Loading bool // sprites still loading
}

type overlayLine struct {
	text  string
	color core.Color
}

func plain(text string) overlayLine {
	return overlayLine{text: text}
}

func colored(text string, c core.Color) overlayLine {
	return overlayLine{text: text, color: c}
}

// DrawOverlay draws the phase panel over the rendered match.
// Shared by the terminal and browser surfaces.
func DrawOverlay(dst *core.Screen, m *multiplayer.Match, info OverlayInfo) {
	race := m.Mode() == multiplayer.MatchModeRace

	switch m.Phase() {
	case multiplayer.PhaseMenu:
		drawPanel(dst, menuLines(m, info, race))

	case multiplayer.PhaseCountdown:
		drawPanel(dst, []overlayLine{
			colored(fmt.Sprintf("%d", m.Countdown()), core.ColorBrightYellow),
			plain("Get ready"),
		})

	case multiplayer.PhaseResuming:
		drawPanel(dst, []overlayLine{
			colored(fmt.Sprintf("%d", m.Countdown()), core.ColorBrightYellow),
			plain("Resuming"),
		})

	case multiplayer.PhaseRunning:
		if race {
			secs := int(m.TimeLeft() / 60)
			text := fmt.Sprintf(" TIME %d:%02d ", secs/60, secs%60)
			dst.DrawTextColor((dst.Width()-utf8.RuneCountInString(text))/2, 0, text, core.ColorBrightWhite)
		}

	case multiplayer.PhasePaused:
		drawPanel(dst, []overlayLine{
			colored("PAUSED", core.ColorBrightYellow),
			plain(""),
			plain("P / ENTER  resume"),
			plain("R  restart   B  menu"),
		})

	case multiplayer.PhaseOver:
		drawPanel(dst, overLines(m.Outcome(), m.Sessions()))

	case multiplayer.PhaseSubmitting:
		drawPanel(dst, []overlayLine{
			colored("GAME OVER", core.ColorBrightRed),
			plain(fmt.Sprintf("Score: %d", scoreOf(m.Outcome(), 0))),
			plain(""),
			colored("Submitting score...", core.ColorGray),
		})

	case multiplayer.PhaseResults:
		if race {
			lines := overLines(m.Outcome(), m.Sessions())
			lines = append(lines, plain(""), plain("ENTER  rematch   B  menu"))
			drawPanel(dst, lines)
			return
		}
		drawPanel(dst, resultLines(m.Outcome(), m.Result()))
	}
}

func menuLines(m *multiplayer.Match, info OverlayInfo, race bool) []overlayLine {
	title := m.Sessions()[0].Game.Title()
	if race {
		title += "  (race)"
	}
	lines := []overlayLine{
		colored(title, core.ColorBrightCyan),
		plain(""),
	}
	if race {
		lines = append(lines,
			plain("P1  W / SPACE jump   S crouch"),
			plain("P2  UP jump   DOWN crouch"),
		)
	}
	lines = append(lines,
		plain("ENTER / SPACE  start"),
		plain("B  back   Q  quit"),
	)
	if info.Best > 0 && !race {
		lines = append(lines, plain(""), colored(fmt.Sprintf("Best: %d", info.Best), core.ColorYellow))
	}
	if info.Loading {
		lines = append(lines, colored("loading sprites...", core.ColorGray))
	}
	return lines
}

func overLines(out multiplayer.Outcome, sessions []*multiplayer.Session) []overlayLine {
	if len(out.Scores) < 2 {
		lines := []overlayLine{
			colored("GAME OVER", core.ColorBrightRed),
			plain(fmt.Sprintf("Score: %d", scoreOf(out, 0))),
		}
		if out.NewBest {
			lines = append(lines, colored("New best!", core.ColorBrightYellow))
		}
		return lines
	}

	headline := "DRAW"
	if !out.Draw() {
		headline = fmt.Sprintf("%s WINS", nameOf(sessions, out.Winner))
	}
	lines := []overlayLine{
		colored(headline, core.ColorBrightYellow),
		colored(out.Reason.String(), core.ColorGray),
		plain(""),
	}
	for i, s := range sessions {
		lines = append(lines, plain(fmt.Sprintf("%s: %d", s.Name, scoreOf(out, i))))
	}
	return lines
}

func resultLines(out multiplayer.Outcome, res leaderboard.Result) []overlayLine {
	score := scoreOf(out, 0)
	head := fmt.Sprintf("Score: %d", score)
	if res.Rank > 0 {
		head += fmt.Sprintf("   Rank #%d", res.Rank)
	}
	lines := []overlayLine{
		colored("RESULTS", core.ColorBrightCyan),
		plain(head),
		plain(""),
	}

	switch {
	case !res.Ok():
		lines = append(lines, colored("Leaderboard offline", core.ColorGray))
	case len(res.Records) == 0:
		lines = append(lines, colored("No scores yet", core.ColorGray))
	default:
		for i, r := range res.Records {
			c := core.ColorDefault
			if i+1 == res.Rank && r.Score == score {
				c = core.ColorBrightYellow
			}
			lines = append(lines, colored(fmt.Sprintf("%2d. %-16s %6d", i+1, r.Name, r.Score), c))
		}
	}

	return append(lines, plain(""), plain("ENTER  play again   B  menu"))
}

func scoreOf(out multiplayer.Outcome, i int) int {
	if i < len(out.Scores) {
		return out.Scores[i]
	}
	return 0
}

func nameOf(sessions []*multiplayer.Session, p multiplayer.PlayerID) string {
	for _, s := range sessions {
		if s.Player == p && s.Name != "" {
			return s.Name
		}
	}
	return fmt.Sprintf("PLAYER %d", p)
}

// drawPanel draws a boxed, centered block of lines.
func drawPanel(dst *core.Screen, lines []overlayLine) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l.text))
	}
	w = min(w+4, dst.Width())
	h := min(len(lines)+2, dst.Height())

	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	r := core.NewRect(x, y, w, h)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)

	for i, l := range lines {
		if i+1 >= h-1 {
			break
		}
		lx := x + (w-utf8.RuneCountInString(l.text))/2
		dst.DrawTextColor(lx, y+1+i, l.text, l.color)
	}
}
