package presentation

import "github.com/bwmarrin/discordgo"

// Commands returns all slash commands for the matchmaking module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "register",
			Description: "Register for inhouse matches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Display name (defaults to your server nickname)",
					Required:    false,
				},
			},
		},
		{
			Name:        "roles",
			Description: "Set your preferred roles",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "roles",
					Description: "Positions 1-5 or names, comma-separated (e.g. \"1, 3\" or \"carry, mid\"); \"none\" to clear",
					Required:    true,
				},
			},
		},
		{
			Name:        "captain",
			Description: "Set whether you are willing to captain drafts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Captain eligibility",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "On", Value: "on"},
						{Name: "Off", Value: "off"},
					},
				},
			},
		},
		{
			Name:        "profile",
			Description: "Show your registration, rating and preferences",
		},
		{
			Name:        "lobby",
			Description: "Manage the match lobby",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the lobby",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the lobby",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show who is waiting",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Empty the lobby",
				},
			},
		},
		{
			Name:        "shuffle",
			Description: "Form balanced teams from the lobby",
		},
		{
			Name:        "draft",
			Description: "Run a captain's draft",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a draft from the lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "captain1",
							Description: "First captain (picked from eligible players if omitted)",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "captain2",
							Description: "Second captain (picked from eligible players if omitted)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "side",
					Description: "Choose the side your team plays",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "side",
							Description: "Side to play",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Radiant", Value: "radiant"},
								{Name: "Dire", Value: "dire"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "firstpick",
					Description: "Choose whether your team picks first in game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "slot",
							Description: "In-game pick slot",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "First", Value: "first"},
								{Name: "Second", Value: "second"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "order",
					Description: "Choose whether you draft players first or second",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "slot",
							Description: "Player draft slot",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "First", Value: "first"},
								{Name: "Second", Value: "second"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pick",
					Description: "Draft a player onto your team",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "player",
							Description:  "Player to draft",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "prefer",
					Description: "State which side you would like to end up on",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "side",
							Description: "Preferred side",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Radiant", Value: "radiant"},
								{Name: "Dire", Value: "dire"},
								{Name: "None", Value: "none"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the current draft state",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel the current draft",
				},
			},
		},
	}
}
