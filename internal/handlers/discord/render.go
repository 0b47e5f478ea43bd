package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

const (
	colorStatus   = 0x3498db
	colorShapes   = 0x9b59b6
	colorScore    = 0x00ff00
	colorAlert    = 0xff0000
	colorGameOver = 0xf1c40f
)

func renderStatusEmbed(status string, controls models.Controls) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Recall",
		Description: status,
		Color:       colorStatus,
		Footer: &discordgo.MessageEmbedFooter{
			Text: renderControls(controls),
		},
	}
}

func renderControls(controls models.Controls) string {
	var enabled []string
	if controls.ShapeTools {
		enabled = append(enabled, "draw")
	}
	if controls.Undo {
		enabled = append(enabled, "undo")
	}
	if controls.Redo {
		enabled = append(enabled, "redo")
	}
	if controls.Validate {
		enabled = append(enabled, "submit")
	}
	if len(enabled) == 0 {
		return "Controls locked"
	}
	return "Available: " + strings.Join(enabled, ", ")
}

func renderShapeList(shapes []models.Shape) string {
	if len(shapes) == 0 {
		return "_The canvas is empty._"
	}
	var sb strings.Builder
	for i, shape := range shapes {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, shape)
	}
	return sb.String()
}

func renderShapesEmbed(shapes []models.Shape) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Shapes on canvas (%d)", len(shapes)),
		Description: renderShapeList(shapes),
		Color:       colorShapes,
	}
}

func renderScoreEmbed(line, comment string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       line,
		Description: comment,
		Color:       colorScore,
	}
}

func renderAlertEmbed(text string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Hold on",
		Description: text,
		Color:       colorAlert,
	}
}

func renderGameOverEmbed(summary, comment string) *discordgo.MessageEmbed {
	description := summary
	if comment != "" {
		description = summary + "\n\n_" + comment + "_"
	}
	return &discordgo.MessageEmbed{
		Title:       "Game over",
		Description: description,
		Color:       colorGameOver,
	}
}

// renderStateEmbed shows a snapshot of the channel's session
func renderStateEmbed(state *game.GetStateOutput) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Mode",
			Value:  string(state.Mode),
			Inline: true,
		},
		{
			Name:   "Phase",
			Value:  state.Phase.String(),
			Inline: true,
		},
		{
			Name:   "Round",
			Value:  fmt.Sprintf("%d", state.Round),
			Inline: true,
		},
	}

	if len(state.Scores) > 0 {
		var sb strings.Builder
		for _, entry := range state.Scores {
			fmt.Fprintf(&sb, "Round %d - %s: %d/100\n", entry.Round, entry.PlayerID.DisplayName(), entry.Score)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Scores",
			Value: sb.String(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Current game",
		Description: renderShapeList(state.Shapes),
		Color:       colorStatus,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: renderControls(state.Controls),
		},
	}
}
