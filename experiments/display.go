package experiments

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"tictactoe/experiments/metrics"
)

// PrintSummary writes the aggregate outcome of one matchup to stdout,
// colored where the terminal supports it: agent 1 in green, agent 2 in
// red, draws in yellow.
func PrintSummary(m Matchup) {
	out := termenv.NewOutput(os.Stdout)
	s := m.Summary

	fmt.Fprintf(out, "%s vs %s: %d games\n", describe(m.Agent1), describe(m.Agent2), s.Games)
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("player 0 (%s) wins: %d", describe(m.Agent1), s.Wins[0])).
		Foreground(termenv.ANSIGreen))
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("player 1 (%s) wins: %d", describe(m.Agent2), s.Wins[1])).
		Foreground(termenv.ANSIRed))
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("draws: %d", s.Draws)).
		Foreground(termenv.ANSIYellow))
	fmt.Fprintf(out, "  evaluations per game: %.1f\n", s.AvgEvaluations())
}

// describe names an agent config the way the agents name themselves.
func describe(config metrics.AgentConfig) string {
	if config.Kind == "negamax" {
		return fmt.Sprintf("negamax-%d", config.Depth)
	}
	return config.Kind
}
