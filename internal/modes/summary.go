package modes

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/recall/internal/models"
)

func scoreLine(round, score int) string {
	return fmt.Sprintf("Round %d: %d/100", round, score)
}

func playerScoreLine(round int, player models.PlayerID, score int) string {
	return fmt.Sprintf("Round %d - %s: %d/100", round, player.DisplayName(), score)
}

// duelSummary reports both averages and the winner, or a tie
func duelSummary(one, two *models.PlayerStats) string {
	var sb strings.Builder
	sb.WriteString("Final results\n\n")
	fmt.Fprintf(&sb, "%s: %.2f points\n", models.PlayerOne.DisplayName(), one.Average)
	fmt.Fprintf(&sb, "%s: %.2f points\n\n", models.PlayerTwo.DisplayName(), two.Average)

	switch {
	case one.Average > two.Average:
		fmt.Fprintf(&sb, "%s wins the game!", models.PlayerOne.DisplayName())
	case two.Average > one.Average:
		fmt.Fprintf(&sb, "%s wins the game!", models.PlayerTwo.DisplayName())
	default:
		sb.WriteString("It's a tie!")
	}
	return sb.String()
}

func exactShapesAlert(n int) string {
	return fmt.Sprintf("You must create exactly %d shapes!", n)
}
