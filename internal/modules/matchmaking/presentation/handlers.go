package presentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/bot"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/usecases"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// Embed colors.
const (
	colorSuccess = 0x08c404
	colorError   = 0xE74C3C
)

// Handlers holds all the command handlers.
type Handlers struct {
	roster  *usecases.RosterService
	lobby   *usecases.LobbyService
	shuffle *usecases.ShuffleService
	draft   *usecases.DraftService
}

// NewHandlers creates new Handlers.
func NewHandlers(
	roster *usecases.RosterService,
	lobby *usecases.LobbyService,
	shuffle *usecases.ShuffleService,
	draft *usecases.DraftService,
) *Handlers {
	return &Handlers{
		roster:  roster,
		lobby:   lobby,
		shuffle: shuffle,
		draft:   draft,
	}
}

// HandleRegister handles the /register command.
func (h *Handlers) HandleRegister(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	name := getDisplayName(i.Member)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "name" {
			name = opt.StringValue()
		}
	}

	output, err := h.roster.Register(context.Background(), usecases.RegisterInput{
		GuildID: guildID,
		UserID:  userID,
		Name:    name,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	if output.Created {
		return respondSuccess(r, fmt.Sprintf("Registered **%s**.", output.Profile.Name))
	}
	return respondSuccess(r, fmt.Sprintf("Updated registration to **%s**.", output.Profile.Name))
}

// HandleRoles handles the /roles command.
func (h *Handlers) HandleRoles(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	var raw string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "roles" {
			raw = opt.StringValue()
		}
	}

	var roles []domain.Role
	if !strings.EqualFold(strings.TrimSpace(raw), "none") {
		parsed, ok := domain.ParseRoles(raw)
		if !ok {
			return respondError(r, "Invalid roles, use positions 1-5 or names like \"carry, mid\"")
		}
		roles = parsed
	}

	output, err := h.roster.SetRoles(context.Background(), usecases.SetRolesInput{
		GuildID: guildID,
		UserID:  userID,
		Roles:   roles,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, fmt.Sprintf(
		"Preferred roles set to %s.", domain.FormatRoles(output.Profile.Roles),
	))
}

// HandleCaptain handles the /captain command.
func (h *Handlers) HandleCaptain(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	var mode string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "mode" {
			mode = opt.StringValue()
		}
	}

	output, err := h.roster.SetCaptainEligibility(context.Background(), usecases.SetCaptainEligibilityInput{
		GuildID:  guildID,
		UserID:   userID,
		Eligible: mode == "on",
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	if output.Profile.CaptainEligible {
		return respondSuccess(r, "You are now captain eligible.")
	}
	return respondSuccess(r, "You are no longer captain eligible.")
}

// HandleProfile handles the /profile command.
func (h *Handlers) HandleProfile(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	output, err := h.roster.Profile(context.Background(), usecases.ProfileInput{
		GuildID: guildID,
		UserID:  userID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondProfile(r, output.RatedProfile)
}

// HandleLobby handles the /lobby command.
func (h *Handlers) HandleLobby(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return respondError(r, "Invalid subcommand")
	}

	subCmd := options[0]
	switch subCmd.Name {
	case "join":
		return h.handleLobbyJoin(s, i, r)
	case "leave":
		return h.handleLobbyLeave(s, i, r)
	case "list":
		return h.handleLobbyList(s, i, r)
	case "clear":
		return h.handleLobbyClear(s, i, r)
	default:
		return respondError(r, "Unknown subcommand")
	}
}

func (h *Handlers) handleLobbyJoin(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	output, err := h.lobby.Join(context.Background(), usecases.JoinLobbyInput{
		GuildID: guildID,
		UserID:  userID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, fmt.Sprintf("Joined the lobby (%d waiting).", output.Count))
}

func (h *Handlers) handleLobbyLeave(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	output, err := h.lobby.Leave(context.Background(), usecases.LeaveLobbyInput{
		GuildID: guildID,
		UserID:  userID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, fmt.Sprintf("Left the lobby (%d waiting).", output.Count))
}

func (h *Handlers) handleLobbyList(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	output, err := h.lobby.Members(context.Background(), usecases.LobbyMembersInput{
		GuildID: guildID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondLobbyList(r, output.Members)
}

func (h *Handlers) handleLobbyClear(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.lobby.Clear(context.Background(), usecases.ClearLobbyInput{
		GuildID: guildID,
	}); err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Lobby cleared.")
}

// HandleShuffle handles the /shuffle command.
func (h *Handlers) HandleShuffle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	output, err := h.shuffle.Shuffle(context.Background(), usecases.ShuffleInput{
		GuildID: guildID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondMatchPlan(r, "Teams are ready", output.Plan, output.RadiantWinProbability, output.Excluded)
}

// HandleDraft handles the /draft command.
func (h *Handlers) HandleDraft(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return respondError(r, "Invalid subcommand")
	}

	subCmd := options[0]
	switch subCmd.Name {
	case "start":
		return h.handleDraftStart(s, i, r, subCmd.Options)
	case "side":
		return h.handleDraftSide(s, i, r, subCmd.Options)
	case "firstpick":
		return h.handleDraftFirstPick(s, i, r, subCmd.Options)
	case "order":
		return h.handleDraftOrder(s, i, r, subCmd.Options)
	case "pick":
		return h.handleDraftPick(s, i, r, subCmd.Options)
	case "prefer":
		return h.handleDraftPrefer(s, i, r, subCmd.Options)
	case "status":
		return h.handleDraftStatus(s, i, r)
	case "cancel":
		return h.handleDraftCancel(s, i, r)
	default:
		return respondError(r, "Unknown subcommand")
	}
}

func (h *Handlers) handleDraftStart(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	var captain1, captain2 snowflake.ID
	for _, opt := range options {
		user := opt.UserValue(s)
		if user == nil {
			continue
		}
		switch opt.Name {
		case "captain1":
			captain1, _ = snowflake.Parse(user.ID)
		case "captain2":
			captain2, _ = snowflake.Parse(user.ID)
		}
	}

	output, err := h.draft.Start(context.Background(), usecases.StartDraftInput{
		GuildID:  guildID,
		Captain1: captain1,
		Captain2: captain2,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondDraftStatus(r, output.Status, output.Excluded)
}

func (h *Handlers) handleDraftSide(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	side, ok := sideOption(options, "side")
	if !ok || side == domain.SideNone {
		return respondError(r, "Invalid side")
	}

	output, err := h.draft.ChooseSide(context.Background(), usecases.ChooseSideInput{
		GuildID: guildID,
		Actor:   userID,
		Side:    side,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondDraftStatus(r, output.Status, nil)
}

func (h *Handlers) handleDraftFirstPick(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	slot, ok := slotOption(options, "slot")
	if !ok {
		return respondError(r, "Invalid slot")
	}

	output, err := h.draft.ChooseFirstPick(context.Background(), usecases.ChooseFirstPickInput{
		GuildID: guildID,
		Actor:   userID,
		Slot:    slot,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondDraftStatus(r, output.Status, nil)
}

func (h *Handlers) handleDraftOrder(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	slot, ok := slotOption(options, "slot")
	if !ok {
		return respondError(r, "Invalid slot")
	}

	output, err := h.draft.ChooseDraftOrder(context.Background(), usecases.ChooseDraftOrderInput{
		GuildID: guildID,
		Actor:   userID,
		Slot:    slot,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondDraftStatus(r, output.Status, nil)
}

func (h *Handlers) handleDraftPick(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	var raw string
	for _, opt := range options {
		if opt.Name == "player" {
			raw = opt.StringValue()
		}
	}
	playerID, err := snowflake.Parse(raw)
	if err != nil {
		return respondError(r, "Invalid player")
	}

	output, err := h.draft.Pick(context.Background(), usecases.PickInput{
		GuildID: guildID,
		Actor:   userID,
		Player:  playerID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	if output.Plan != nil {
		return respondMatchPlan(r, "Draft complete", output.Plan, output.RadiantWinProbability, nil)
	}
	return respondDraftStatus(r, output.Status, nil)
}

func (h *Handlers) handleDraftPrefer(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	side, ok := sideOption(options, "side")
	if !ok {
		return respondError(r, "Invalid side")
	}

	if _, err := h.draft.SetSidePreference(context.Background(), usecases.SetSidePreferenceInput{
		GuildID: guildID,
		UserID:  userID,
		Side:    side,
	}); err != nil {
		return respondError(r, err.Error())
	}

	if side == domain.SideNone {
		return respondSuccess(r, "Side preference cleared.")
	}
	return respondSuccess(r, fmt.Sprintf("Side preference set to %s.", side.DisplayName()))
}

func (h *Handlers) handleDraftStatus(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	output, err := h.draft.Status(context.Background(), usecases.DraftStatusInput{
		GuildID: guildID,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondDraftStatus(r, output.Status, nil)
}

func (h *Handlers) handleDraftCancel(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	if _, err := h.draft.Cancel(context.Background(), usecases.CancelDraftInput{
		GuildID:    guildID,
		Actor:      userID,
		Authorized: canModerate(i.Member),
	}); err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Draft cancelled.")
}

// canModerate reports whether the member may cancel a draft they are
// not captaining.
func canModerate(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionManageServer != 0
}

// sideOption extracts and parses a side option by name.
func sideOption(
	options []*discordgo.ApplicationCommandInteractionDataOption,
	name string,
) (domain.Side, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return domain.ParseSide(opt.StringValue())
		}
	}
	return domain.SideNone, false
}

// slotOption extracts and parses a first/second slot option by name.
func slotOption(
	options []*discordgo.ApplicationCommandInteractionDataOption,
	name string,
) (domain.PickSlot, bool) {
	for _, opt := range options {
		if opt.Name != name {
			continue
		}
		switch opt.StringValue() {
		case "first":
			return domain.SlotFirst, true
		case "second":
			return domain.SlotSecond, true
		}
	}
	return 0, false
}

// Response helpers.

func respondError(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: message,
					Color:       colorError,
				},
			},
		},
	})
}

func respondSuccess(r bot.Responder, description string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: description,
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondProfile(r bot.Responder, rated usecases.RatedProfile) error {
	profile := rated.Profile

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rating: %.0f\n", rated.Value)
	fmt.Fprintf(&sb, "Roles: %s\n", domain.FormatRoles(profile.Roles))
	if profile.CaptainEligible {
		sb.WriteString("Captain eligible\n")
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       profile.Name,
					Description: sb.String(),
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondLobbyList(r bot.Responder, members []usecases.RatedProfile) error {
	embed := &discordgo.MessageEmbed{
		Title: "Lobby",
		Color: colorSuccess,
	}

	if len(members) == 0 {
		embed.Description = "The lobby is empty."
	} else {
		var sb strings.Builder
		for idx, m := range members {
			fmt.Fprintf(&sb, "%d\\. **%s** - %.0f - roles: %s",
				idx+1, m.Profile.Name, m.Value, domain.FormatRoles(m.Profile.Roles))
			if m.Profile.CaptainEligible {
				sb.WriteString(" - captain")
			}
			sb.WriteString("\n")
		}
		embed.Description = sb.String()
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d waiting", len(members)),
		}
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func respondMatchPlan(
	r bot.Responder,
	title string,
	plan *domain.MatchPlan,
	radiantWinProb float64,
	excluded []domain.Player,
) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Value gap: %.0f\n", plan.ValueGap())
	fmt.Fprintf(&sb, "Radiant win probability: %.1f%%", radiantWinProb*100)
	if plan.FirstPick != domain.SideNone {
		fmt.Fprintf(&sb, "\nFirst pick: %s", plan.FirstPick.DisplayName())
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			teamField(domain.SideRadiant.DisplayName(), plan.Radiant),
			teamField(domain.SideDire.DisplayName(), plan.Dire),
		},
	}
	if len(excluded) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Sitting out",
			Value: playerNames(excluded),
		})
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func teamField(name string, team domain.Team) *discordgo.MessageEmbedField {
	var sb strings.Builder
	for _, p := range team.Players {
		if role, ok := team.RoleOf(p.ID); ok {
			fmt.Fprintf(&sb, "**%s** - %s - %.0f\n", p.Name, role.DisplayName(), p.Value)
		} else {
			fmt.Fprintf(&sb, "**%s** - %.0f\n", p.Name, p.Value)
		}
	}
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s (%.0f)", name, team.Value),
		Value:  sb.String(),
		Inline: true,
	}
}

func respondDraftStatus(r bot.Responder, status domain.DraftStatus, excluded []domain.Player) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** vs **%s**\n",
		status.Captains[0].Player.Name, status.Captains[1].Player.Name)
	fmt.Fprintf(&sb, "**%s** won the coinflip.\n", status.CoinflipWinner.Name)
	if status.FirstPick != domain.SideNone {
		fmt.Fprintf(&sb, "First pick: %s\n", status.FirstPick.DisplayName())
	}
	sb.WriteString("\n")

	switch status.Pending {
	case domain.ChoiceSideOrFirstPick:
		fmt.Fprintf(&sb, "Waiting on **%s** to choose a side (`/draft side`) or first pick (`/draft firstpick`).",
			status.NextActor.Name)
	case domain.ChoiceSide:
		fmt.Fprintf(&sb, "Waiting on **%s** to choose a side (`/draft side`).", status.NextActor.Name)
	case domain.ChoiceFirstPick:
		fmt.Fprintf(&sb, "Waiting on **%s** to choose first pick (`/draft firstpick`).", status.NextActor.Name)
	case domain.ChoiceDraftOrder:
		fmt.Fprintf(&sb, "Waiting on **%s** to choose the draft order (`/draft order`).", status.NextActor.Name)
	case domain.ChoicePick:
		if status.PicksRemaining > 1 {
			fmt.Fprintf(&sb, "**%s** picks next (%d in a row).", status.NextActor.Name, status.PicksRemaining)
		} else {
			fmt.Fprintf(&sb, "**%s** picks next.", status.NextActor.Name)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Draft - %s", status.Phase),
		Description: sb.String(),
		Color:       colorSuccess,
	}
	for idx := range status.Captains {
		embed.Fields = append(embed.Fields, captainField(status.Captains[idx]))
	}
	if len(status.Available) > 0 {
		embed.Fields = append(embed.Fields, availableField(status.Available, status.Preferences))
	}
	if len(excluded) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Sitting out",
			Value: playerNames(excluded),
		})
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func captainField(cs domain.CaptainStatus) *discordgo.MessageEmbedField {
	name := cs.Player.Name
	if cs.Side != domain.SideNone {
		name = fmt.Sprintf("%s (%s)", cs.Player.Name, cs.Side.DisplayName())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** - %.0f\n", cs.Player.Name, cs.Player.Value)
	for _, p := range cs.Picks {
		fmt.Fprintf(&sb, "**%s** - %.0f\n", p.Name, p.Value)
	}
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  sb.String(),
		Inline: true,
	}
}

func availableField(available []domain.Player, prefs map[snowflake.ID]domain.Side) *discordgo.MessageEmbedField {
	var sb strings.Builder
	for _, p := range available {
		fmt.Fprintf(&sb, "**%s** - %.0f", p.Name, p.Value)
		if side, ok := prefs[p.ID]; ok {
			fmt.Fprintf(&sb, " - prefers %s", side.DisplayName())
		}
		sb.WriteString("\n")
	}
	return &discordgo.MessageEmbedField{
		Name:  "Available",
		Value: sb.String(),
	}
}

func playerNames(players []domain.Player) string {
	parts := make([]string, len(players))
	for i, p := range players {
		parts[i] = fmt.Sprintf("**%s**", p.Name)
	}
	return strings.Join(parts, ", ")
}

// getDisplayName returns the effective display name for a guild member.
// Priority: guild nickname > global display name > username.
func getDisplayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
