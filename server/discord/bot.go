package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/exonian/articlebot/server/app"
	"github.com/exonian/articlebot/server/command"
)

// Bot ties the discordgo session to the command runner: it registers the
// slash commands and turns interactions into command invocations.
type Bot struct {
	session  *discordgo.Session
	articles app.ArticleService
	log      zerolog.Logger
	timeout  time.Duration
}

func NewBot(session *discordgo.Session, articles app.ArticleService, log zerolog.Logger, timeout time.Duration) *Bot {
	return &Bot{
		session:  session,
		articles: articles,
		log:      log,
		timeout:  timeout,
	}
}

// RegisterHandlers installs the interaction handler. Call before Open so no
// interaction is missed.
func (b *Bot) RegisterHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.Info().Str("user", r.User.Username).Msg("connected to gateway")
	})
}

// SyncCommands force-publishes the slash command set to one guild, which
// propagates immediately (global registration can take up to an hour).
func (b *Bot) SyncCommands(ctx context.Context, guildID string) error {
	appID := b.session.State.User.ID
	_, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, commandDefinitions(), discordgo.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "publishing commands to guild %s", guildID)
	}
	b.log.Info().Str("guild_id", guildID).Msg("slash commands synced")
	return nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Acknowledge fast so Discord doesn't time the interaction out while
	// we talk to the API.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		b.log.Error().Err(err).Msg("could not acknowledge interaction")
		return
	}

	inv := invocationFrom(i)
	runner := command.NewRunner(inv, b.articles, b, &followupPoster{session: s, interaction: i, log: b.log}, b.log, b.timeout)
	if err := runner.Execute(); err != nil {
		b.log.Error().Err(err).Str("command", inv.Command).Msg("command runner failed")
	}
}

func invocationFrom(i *discordgo.InteractionCreate) command.Invocation {
	data := i.ApplicationCommandData()

	args := map[string]string{}
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			args[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionChannel:
			// The raw value is the channel ID; no state lookup needed.
			if id, ok := opt.Value.(string); ok {
				args[opt.Name] = id
			}
		}
	}

	inv := command.Invocation{
		Command:   data.Name,
		Args:      args,
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	}
	if i.Member != nil {
		inv.UserID = i.Member.User.ID
		inv.Roles = i.Member.Roles
		inv.IsAdmin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
	}
	return inv
}

// followupPoster replies ephemerally through the deferred interaction.
type followupPoster struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	log         zerolog.Logger
}

func (p *followupPoster) Post(text string) {
	_, err := p.session.FollowupMessageCreate(p.interaction.Interaction, true, &discordgo.WebhookParams{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		p.log.Error().Err(err).Msg("could not send command reply")
	}
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Test if the bot is alive",
		},
		{
			Name:        "setup",
			Description: "Create the article categories and Editors role, bind this server",
		},
		{
			Name:        "sync",
			Description: "Force-publish commands to this server (admin only)",
		},
		{
			Name:        "new-article",
			Description: "Create a private channel for an article",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Article title",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "deadline",
					Description: "Deadline, e.g. '2026-09-07 23:00' or 'Sep 7 23:00'",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "writers",
					Description: "Mention writers separated by spaces",
				},
			},
		},
		{
			Name:        "archive",
			Description: "Archive an article channel (defaults to the current channel)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to archive",
				},
			},
		},
		{
			Name:        "reopen",
			Description: "Move an archived article back to the active category",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to reopen",
				},
			},
		},
		{
			Name:        "set-deadline",
			Description: "Change an article's deadline",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Article channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "deadline",
					Description: "New deadline, e.g. '2026-09-07 23:00'",
					Required:    true,
				},
			},
		},
		{
			Name:        "delete-article",
			Description: "Delete an article channel and stop tracking it",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Article channel to delete",
				},
			},
		},
		{
			Name:        "list-articles",
			Description: "List active article channels and deadlines",
		},
	}
}
