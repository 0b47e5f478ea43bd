package messaging

import (
	"strconv"
	"strings"
)

// ScoreFromLine reads the score from a "... S/100" line
func ScoreFromLine(line string) (int, bool) {
	if !strings.HasSuffix(line, "/100") {
		return 0, false
	}
	head := strings.TrimSuffix(line, "/100")
	idx := strings.LastIndex(head, " ")
	score, err := strconv.Atoi(head[idx+1:])
	if err != nil {
		return 0, false
	}
	return score, true
}

// AverageFromSummary reads the best "NN.NN points" figure of a summary
func AverageFromSummary(summary string) float64 {
	best := 0.0
	for _, line := range strings.Split(summary, "\n") {
		idx := strings.LastIndex(line, ": ")
		if idx < 0 || !strings.HasSuffix(line, " points") {
			continue
		}
		value := strings.TrimSuffix(line[idx+2:], " points")
		if v, err := strconv.ParseFloat(value, 64); err == nil && v > best {
			best = v
		}
	}
	return best
}

// IsTie reports whether a two-player summary ended level
func IsTie(summary string) bool {
	return strings.Contains(summary, "It's a tie!")
}
