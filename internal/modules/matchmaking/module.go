package matchmaking

import (
	"log/slog"
	"math/rand/v2"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/inhouse-league/stackbot/internal/bot"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/usecases"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/infrastructure"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/presentation"
)

func init() {
	bot.Register(&MatchmakingModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*MatchmakingModule)(nil)

// MatchmakingModule provides inhouse matchmaking commands: player
// registration, the waiting lobby, shuffled teams and captain's drafts.
type MatchmakingModule struct {
	config       *Config
	store        *infrastructure.Store
	handlers     *presentation.Handlers
	autocomplete *presentation.AutocompleteHandler
}

// Name returns the module name.
func (m *MatchmakingModule) Name() string {
	return "matchmaking"
}

// Commands returns the slash commands for this module.
func (m *MatchmakingModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *MatchmakingModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"register": m.handlers.HandleRegister,
		"roles":    m.handlers.HandleRoles,
		"captain":  m.handlers.HandleCaptain,
		"profile":  m.handlers.HandleProfile,
		"lobby":    m.handlers.HandleLobby,
		"shuffle":  m.handlers.HandleShuffle,
		"draft":    m.handlers.HandleDraft,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *MatchmakingModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			m.handleInteractionCreate(s, i)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *MatchmakingModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *MatchmakingModule) Init(deps bot.ModuleDependencies) error {
	store, err := infrastructure.NewStore(m.config.DBPath)
	if err != nil {
		return err
	}
	m.store = store

	lobby := infrastructure.NewMemoryLobby()
	drafts := infrastructure.NewMemoryDraftStore(m.config.DraftTTL)
	scale := infrastructure.NewOpenSkillScale()

	assigner, err := domain.NewAssigner(domain.PenaltyConfig{
		OffRoleMultiplier:  m.config.OffRoleMultiplier,
		OffRoleFlatPenalty: m.config.OffRoleFlatPenalty,
	}, m.config.AssignmentCacheSize)
	if err != nil {
		return err
	}
	balancer := domain.NewBalancer(assigner)

	roster := usecases.NewRosterService(store, scale)
	lobbyService := usecases.NewLobbyService(store, lobby, scale)
	shuffle := usecases.NewShuffleService(
		store, lobby, balancer, store, scale, nil,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	)
	draft := usecases.NewDraftService(
		store, lobby, drafts, store, scale, nil, m.config.CaptainProximityFactor,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	)

	m.handlers = presentation.NewHandlers(roster, lobbyService, shuffle, draft)
	m.autocomplete = presentation.NewAutocompleteHandler(draft)

	slog.Info("matchmaking module initialized", "db_path", m.config.DBPath)

	return nil
}

// Shutdown cleans up module resources.
func (m *MatchmakingModule) Shutdown() error {
	if m.store != nil {
		return m.store.Close()
	}
	return nil
}

// handleInteractionCreate routes autocomplete interactions, which the
// bot core does not dispatch through command handlers.
func (m *MatchmakingModule) handleInteractionCreate(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
) {
	if i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "draft" || len(data.Options) == 0 {
		return
	}
	if data.Options[0].Name == "pick" {
		m.autocomplete.HandleDraftPick(s, i)
	}
}
