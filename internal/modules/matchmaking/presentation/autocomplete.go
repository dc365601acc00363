package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/usecases"
)

// AutocompleteHandler handles autocomplete requests.
type AutocompleteHandler struct {
	draft *usecases.DraftService
}

// NewAutocompleteHandler creates a new AutocompleteHandler.
func NewAutocompleteHandler(draft *usecases.DraftService) *AutocompleteHandler {
	return &AutocompleteHandler{
		draft: draft,
	}
}

// HandleDraftPick suggests undrafted pool players for /draft pick.
func (h *AutocompleteHandler) HandleDraftPick(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
) {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		slog.Warn("failed to parse guild ID in autocomplete", "error", err, "guildID", i.GuildID)
		return
	}

	var query string
	data := i.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "player" && opt.Focused {
				query = opt.StringValue()
				break
			}
		}
	}

	output, err := h.draft.Status(context.Background(), usecases.DraftStatusInput{
		GuildID: guildID,
	})
	if err != nil {
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionApplicationCommandAutocompleteResult,
			Data: &discordgo.InteractionResponseData{
				Choices: []*discordgo.ApplicationCommandOptionChoice{},
			},
		})
		return
	}

	query = strings.ToLower(query)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(output.Status.Available), 25))
	for _, p := range output.Status.Available {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if len(choices) >= 25 {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncate(fmt.Sprintf("%s (%.0f)", p.Name, p.Value), 100),
			Value: p.ID.String(),
		})
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
