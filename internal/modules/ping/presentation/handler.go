package presentation

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/inhouse-league/stackbot/internal/bot"
	"github.com/inhouse-league/stackbot/internal/modules/ping/application"
)

// PingHandler handles the /ping command.
type PingHandler struct {
	interactor *application.HealthInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewHealthInteractor(),
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var latency time.Duration
	if s != nil {
		latency = s.HeartbeatLatency()
	}
	report := h.interactor.Execute(latency)

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: report.Message(),
		},
	})
}
