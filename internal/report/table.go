package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Render formats r as a boxed table for the terminal
func Render(r *Report) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s  (%d nodes, %d edges)", r.Graph.Location, r.Graph.Nodes, r.Graph.Edges)))
	fmt.Fprintf(&b, "root %d  workers %d  threshold %.3g\n\n", r.Root, r.Workers, r.Threshold)

	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%-8s %5s %10s %10s %10s %7s %6s %10s %6s %s",
		"strategy", "runs", "mean ms", "median ms", "min ms", "rounds", "pull", "reachable", "depth", "check")))
	for _, res := range r.Results {
		check := "-"
		if res.Verified != nil {
			check = "ok"
			if !*res.Verified {
				check = failStyle.Render("FAIL")
			}
		}
		fmt.Fprintf(&b, "%-8s %5d %10.3f %10.3f %10.3f %7d %6d %10d %6d %s\n",
			res.Strategy, res.Runs, res.MeanMS, res.MedianMS, res.MinMS,
			res.Rounds, res.PullRounds, res.Reachable, res.MaxDistance, check)
	}

	if len(r.Comparisons) > 0 {
		fmt.Fprintln(&b)
		for _, c := range r.Comparisons {
			fmt.Fprintf(&b, "%s vs %s: %.2fx (p=%.3g)\n", c.Candidate, c.Baseline, c.Speedup, c.P)
		}
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
