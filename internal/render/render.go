// Package render prints a week plan for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"trainbalance/week-planner/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dayStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	exerciseStyle = lipgloss.NewStyle().
			PaddingLeft(14).
			Foreground(lipgloss.Color("250"))

	badgeColors = map[domain.SessionType]lipgloss.Color{
		domain.SessionTraining: lipgloss.Color("33"),
		domain.SessionMatch:    lipgloss.Color("196"),
		domain.SessionGym:      lipgloss.Color("35"),
		domain.SessionRecovery: lipgloss.Color("214"),
	}
)

// Options controls terminal output.
type Options struct {
	NoColor bool
}

// Week writes req's plan to w, one block per day.
func Week(w io.Writer, req domain.PlanRequest, plan domain.WeekPlan, opts Options) error {
	style := func(s lipgloss.Style) lipgloss.Style {
		if opts.NoColor {
			return lipgloss.NewStyle().Width(s.GetWidth()).PaddingLeft(s.GetPaddingLeft())
		}
		return s
	}

	var b strings.Builder
	goal := req.Goal
	if goal == "" {
		goal = domain.DefaultGoal
	}
	b.WriteString(style(headerStyle).Render(fmt.Sprintf("Week plan · match %s · %s", req.MatchDay.Label(), goal.Label())))
	b.WriteString("\n\n")

	for _, dp := range plan {
		if len(dp.Sessions) == 0 {
			b.WriteString(style(dayStyle).Render(dp.Day.Short()))
			b.WriteString(style(restStyle).Render("Rest"))
			b.WriteString("\n")
			continue
		}
		for i, s := range dp.Sessions {
			label := ""
			if i == 0 {
				label = dp.Day.Short()
			}
			b.WriteString(style(dayStyle).Render(label))
			b.WriteString(badge(s.Type, opts))
			b.WriteString(" ")
			b.WriteString(s.Title)
			b.WriteString("\n")
			for _, ex := range s.Exercises {
				b.WriteString(style(exerciseStyle).Render(Exercise(ex)))
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Exercise formats a prescription as "Back Squat 3 × 3–5 (Heavy, 1–2 RIR)".
func Exercise(ex domain.Exercise) string {
	s := fmt.Sprintf("%s %d × %s", ex.Name, ex.Sets, ex.Reps)
	if ex.Notes != "" {
		s += " (" + ex.Notes + ")"
	}
	return s
}

func badge(t domain.SessionType, opts Options) string {
	text := fmt.Sprintf("[%s]", t)
	if opts.NoColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(badgeColors[t]).Render(text)
}
