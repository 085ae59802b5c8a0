package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/exonian/articlebot/server/app"
)

// Gateway implements app.ChannelGateway over a discordgo session.
type Gateway struct {
	session *discordgo.Session
	log     zerolog.Logger
}

var _ app.ChannelGateway = (*Gateway)(nil)

func NewGateway(session *discordgo.Session, log zerolog.Logger) *Gateway {
	return &Gateway{session: session, log: log}
}

// EnsureWorkspace resolves categories and roles by display name, creating
// the managed ones when missing. The @everyone role always shares the
// guild's own ID.
func (g *Gateway) EnsureWorkspace(ctx context.Context, names app.WorkspaceNames) (app.Workspace, error) {
	ws := app.Workspace{GuildID: names.GuildID, EveryoneRoleID: names.GuildID}

	channels, err := g.session.GuildChannels(names.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return app.Workspace{}, errors.Wrap(err, "listing guild channels")
	}
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		switch ch.Name {
		case names.ActiveCategory:
			ws.ActiveCategoryID = ch.ID
		case names.ArchivedCategory:
			ws.ArchivedCategoryID = ch.ID
		}
	}

	if ws.ActiveCategoryID == "" {
		ws.ActiveCategoryID, err = g.createCategory(ctx, names.GuildID, names.ActiveCategory)
		if err != nil {
			return app.Workspace{}, err
		}
	}
	if ws.ArchivedCategoryID == "" {
		ws.ArchivedCategoryID, err = g.createCategory(ctx, names.GuildID, names.ArchivedCategory)
		if err != nil {
			return app.Workspace{}, err
		}
	}

	roles, err := g.session.GuildRoles(names.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return app.Workspace{}, errors.Wrap(err, "listing guild roles")
	}
	for _, role := range roles {
		if role.Name == names.EditorRole {
			ws.EditorRoleID = role.ID
			break
		}
	}
	if ws.EditorRoleID == "" {
		role, err := g.session.GuildRoleCreate(names.GuildID,
			&discordgo.RoleParams{Name: names.EditorRole},
			discordgo.WithContext(ctx))
		if err != nil {
			return app.Workspace{}, errors.Wrapf(err, "creating role %q", names.EditorRole)
		}
		g.log.Info().Str("role_id", role.ID).Str("name", names.EditorRole).Msg("created editor role")
		ws.EditorRoleID = role.ID
	}

	return ws, nil
}

func (g *Gateway) createCategory(ctx context.Context, guildID, name string) (string, error) {
	ch, err := g.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", errors.Wrapf(err, "creating category %q", name)
	}
	g.log.Info().Str("category_id", ch.ID).Str("name", name).Msg("created category")
	return ch.ID, nil
}

func (g *Gateway) ChannelsInCategory(ctx context.Context, guildID, categoryID string) ([]app.Channel, error) {
	channels, err := g.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "listing guild channels")
	}

	var out []app.Channel
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText || ch.ParentID != categoryID {
			continue
		}
		out = append(out, app.Channel{
			ID:         ch.ID,
			Name:       ch.Name,
			Topic:      ch.Topic,
			CategoryID: ch.ParentID,
		})
	}
	return out, nil
}

func (g *Gateway) CreateChannel(ctx context.Context, params app.CreateChannelParams) (app.Channel, error) {
	ch, err := g.session.GuildChannelCreateComplex(params.GuildID, discordgo.GuildChannelCreateData{
		Name:                 params.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                params.Topic,
		ParentID:             params.CategoryID,
		PermissionOverwrites: toDiscordOverwrites(params.Overwrites),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return app.Channel{}, err
	}
	return app.Channel{ID: ch.ID, Name: ch.Name, Topic: ch.Topic, CategoryID: ch.ParentID}, nil
}

func (g *Gateway) MoveChannel(ctx context.Context, channelID, categoryID string) error {
	_, err := g.session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{
		ParentID: categoryID,
	}, discordgo.WithContext(ctx))
	return err
}

func (g *Gateway) ChannelOverwrites(ctx context.Context, channelID string) ([]app.Overwrite, error) {
	ch, err := g.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	out := make([]app.Overwrite, 0, len(ch.PermissionOverwrites))
	for _, ow := range ch.PermissionOverwrites {
		kind := app.TargetRole
		if ow.Type == discordgo.PermissionOverwriteTypeMember {
			kind = app.TargetMember
		}
		out = append(out, app.Overwrite{
			TargetID: ow.ID,
			Kind:     kind,
			Allow:    capabilitiesFromBits(ow.Allow),
			Deny:     capabilitiesFromBits(ow.Deny),
		})
	}
	return out, nil
}

func (g *Gateway) ReplaceOverwrites(ctx context.Context, channelID string, overwrites []app.Overwrite) error {
	_, err := g.session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{
		PermissionOverwrites: toDiscordOverwrites(overwrites),
	}, discordgo.WithContext(ctx))
	return err
}

func (g *Gateway) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := g.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return err
}

func (g *Gateway) PostMessage(ctx context.Context, channelID, content string) (string, error) {
	msg, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (g *Gateway) PinMessage(ctx context.Context, channelID, messageID string) error {
	return g.session.ChannelMessagePin(channelID, messageID, discordgo.WithContext(ctx))
}

func toDiscordOverwrites(overwrites []app.Overwrite) []*discordgo.PermissionOverwrite {
	out := make([]*discordgo.PermissionOverwrite, 0, len(overwrites))
	for _, ow := range overwrites {
		typ := discordgo.PermissionOverwriteTypeRole
		if ow.Kind == app.TargetMember {
			typ = discordgo.PermissionOverwriteTypeMember
		}
		out = append(out, &discordgo.PermissionOverwrite{
			ID:    ow.TargetID,
			Type:  typ,
			Allow: permissionBits(ow.Allow),
			Deny:  permissionBits(ow.Deny),
		})
	}
	return out
}

func permissionBits(c app.Capability) int64 {
	var bits int64
	if c&app.CapView != 0 {
		bits |= discordgo.PermissionViewChannel
	}
	if c&app.CapSend != 0 {
		bits |= discordgo.PermissionSendMessages
	}
	if c&app.CapHistory != 0 {
		bits |= discordgo.PermissionReadMessageHistory
	}
	if c&app.CapManage != 0 {
		bits |= discordgo.PermissionManageMessages
	}
	return bits
}

func capabilitiesFromBits(bits int64) app.Capability {
	var c app.Capability
	if bits&discordgo.PermissionViewChannel != 0 {
		c |= app.CapView
	}
	if bits&discordgo.PermissionSendMessages != 0 {
		c |= app.CapSend
	}
	if bits&discordgo.PermissionReadMessageHistory != 0 {
		c |= app.CapHistory
	}
	if bits&discordgo.PermissionManageMessages != 0 {
		c |= app.CapManage
	}
	return c
}
