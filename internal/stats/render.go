package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	seatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Render formats the session statistics as a terminal table.
func (ss *SessionStats) Render() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("SESSION STATISTICS"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d hands tracked", ss.HandsPlayed)))
	b.WriteString("\n\n")

	if ss.HandsPlayed == 0 {
		b.WriteString("No hands recorded.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%-6s %6s %7s %7s %7s %7s %9s %6s %6s %6s\n",
		"Seat", "Hands", "VPIP%", "PFR%", "3Bet%", "Cbet%", "FoldCbet%", "AF", "WTSD%", "WSD%"))

	for _, seatNum := range ss.Seats() {
		s := ss.Seat(seatNum)
		b.WriteString(fmt.Sprintf("%-6s %6d %7.1f %7.1f %7.1f %7.1f %9.1f %6.2f %6.1f %6.1f\n",
			seatStyle.Render(fmt.Sprintf("#%d", s.Seat)),
			s.Hands, s.VPIP(), s.PFR(), s.ThreeBetPct(),
			s.CbetPct(), s.FoldToCbetPct(), s.AggressionFactor(),
			s.WTSD(), s.WSD()))
	}
	return b.String()
}
