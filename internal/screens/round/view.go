package round

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/engine"
	rnd "github.com/abhisek/mathheroes/internal/round"
	"github.com/abhisek/mathheroes/internal/ui/components"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

func (s *RoundScreen) View(width, height int) string {
	var content string
	switch {
	case s.err != nil:
		content = components.Modal("Can't Start", "This level isn't ready for you yet.", "Back to Levels", width)
	case s.stage == stagePreGame:
		content = s.viewPreGame(width)
	case s.stage == stageCountdown:
		content = s.viewCountdown()
	case s.stage == stagePlaying:
		content = s.viewPlaying(width)
	case s.stage == stageResult && s.ended != nil:
		title, body, button := ResultText(*s.ended)
		if s.ended.Details.SaveErr != nil {
			body += "\n\n⚠ Your progress could not be saved."
		}
		content = components.Modal(title, body, button, width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// PreGameText returns the heading and subheading of the pre-game card.
func PreGameText(p engine.RoundPrepared) (title, subtitle string) {
	if p.IsBoss {
		return "BOSS FIGHT!", fmt.Sprintf("Defeat %s!", p.Hero.Name)
	}
	return "Get Ready!", fmt.Sprintf("%s - Round %d", p.Level.Name, p.RoundNumber)
}

func (s *RoundScreen) viewPreGame(width int) string {
	cw := components.ContentWidth(width)
	title, subtitle := PreGameText(s.prepared)

	titleStyle := theme.Banner
	if s.prepared.IsBoss {
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.BossRed)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		"",
		theme.Body.Render(subtitle),
		"",
		theme.Subtitle.Render(fmt.Sprintf("Answer %d questions in %d seconds to win.",
			s.prepared.RequiredScore, rnd.RoundTimeSeconds)),
		"",
		components.ArcadeButton("START!", true, min(cw-10, 30)),
	)
	return components.ArcadeCard(body, cw)
}

func (s *RoundScreen) viewCountdown() string {
	text := fmt.Sprintf("%d", s.countdown)
	if s.countdown <= 0 {
		text = "GO!"
	}
	return theme.Banner.Render(bigText(text))
}

func (s *RoundScreen) viewPlaying(width int) string {
	cw := components.ContentWidth(width)

	timerStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if s.secondsLeft <= 10 {
		timerStyle = timerStyle.Foreground(theme.Error)
	}
	status := lipgloss.NewStyle().Width(cw).Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(cw/2).Render(
				theme.Body.Render(fmt.Sprintf("Score: %d / %d", s.score, s.prepared.RequiredScore))),
			lipgloss.NewStyle().Width(cw-cw/2).Align(lipgloss.Right).Render(
				timerStyle.Render(fmt.Sprintf("⏱ %ds", s.secondsLeft))),
		))

	bar := components.NewProgressBar("", s.fraction, false, cw)
	label := "Progress"
	if s.prepared.IsBoss {
		bar.Fill = theme.BossRed
		label = s.prepared.Hero.Name + " Health"
	}

	sections := []string{status, ""}
	if s.showGo {
		sections = append(sections, theme.Banner.Render("GO!"), "")
	}
	sections = append(sections,
		lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeYellow).Render(s.question+" = ?"),
		"",
		s.input.View(),
		"",
		theme.Subtitle.Render(label),
		bar.View(),
	)
	return components.ArcadeCard(lipgloss.JoinVertical(lipgloss.Center, sections...), cw+6)
}

// ResultText returns the title, body and button label of the end-of-round dialog.
func ResultText(e engine.RoundEnded) (title, body, button string) {
	d := e.Details
	switch e.Outcome {
	case rnd.OutcomePassed:
		if d.IsBoss {
			body = fmt.Sprintf("You defeated %s!\n\nLEVEL COMPLETE!\nYou unlocked %s!", d.Hero.Name, d.Hero.Name)
			if d.Unlocks.NewLevel != nil {
				body += fmt.Sprintf("\n%s is now open.", d.Unlocks.NewLevel.Name)
			}
			return "VICTORY!", body, "Continue"
		}
		body = fmt.Sprintf("You passed the round with a score of %d!\n\n", d.Score)
		if d.Unlocks.LevelComplete {
			body += "Level already complete!"
		} else {
			body += fmt.Sprintf("You need to pass %d more round(s) to complete this level.", d.Unlocks.RoundsRemaining)
		}
		return "Round Passed!", body, "Continue"
	case rnd.OutcomeFailed:
		body = fmt.Sprintf("You needed %d correct answers, but got %d.\n\nKeep practicing, hero!", d.RequiredScore, d.Score)
		return "Try Again!", body, "Back to Levels"
	default:
		return "Game Over", "You have quit the current round.", "Back to Levels"
	}
}

var digits = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {" ▄█", "  █", "  ▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'G': {"█▀▀", "█ █", "▀▀▀"},
	'O': {"█▀█", "█ █", "▀▀▀"},
	'!': {"█", "▀", "▀"},
}

// bigText renders countdown text in three-row block letters.
func bigText(s string) string {
	var rows [3][]string
	for _, r := range s {
		g, ok := digits[r]
		if !ok {
			return s
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.Join(r, " ")
	}
	return strings.Join(out, "\n")
}
