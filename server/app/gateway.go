package app

import (
	"context"

	"github.com/exonian/articlebot/server/config"
)

// Capability is a platform-neutral permission bit set. The Discord adapter
// translates these into concrete overwrite flags.
type Capability uint8

const (
	CapView Capability = 1 << iota
	CapSend
	CapHistory
	CapManage
)

// TargetKind says whether an overwrite applies to a role or a single member.
type TargetKind int

const (
	TargetRole TargetKind = iota
	TargetMember
)

// Overwrite is one explicit permission entry on a channel. Capabilities in
// neither Allow nor Deny inherit from the channel's category.
type Overwrite struct {
	TargetID string
	Kind     TargetKind
	Allow    Capability
	Deny     Capability
}

// Channel is the slice of channel state the workflow cares about.
type Channel struct {
	ID         string
	Name       string
	Topic      string
	CategoryID string
}

// WorkspaceNames identifies the managed guild structures by display name.
type WorkspaceNames struct {
	GuildID          string
	ActiveCategory   string
	ArchivedCategory string
	EditorRole       string
}

// Workspace holds the resolved IDs of the managed guild structures.
type Workspace struct {
	GuildID            string
	ActiveCategoryID   string
	ArchivedCategoryID string
	EditorRoleID       string
	EveryoneRoleID     string
}

//go:generate mockgen -destination mocks/mocks.go -package mocks github.com/exonian/articlebot/server/app ChannelGateway,Store,ArticleService

// ChannelGateway is everything the workflow needs from the chat platform.
// The real implementation lives in server/discord; tests use the generated
// mock in server/app/mocks.
type ChannelGateway interface {
	// EnsureWorkspace resolves both categories and the editor role by
	// name, creating whichever are missing.
	EnsureWorkspace(ctx context.Context, names WorkspaceNames) (Workspace, error)
	ChannelsInCategory(ctx context.Context, guildID, categoryID string) ([]Channel, error)
	CreateChannel(ctx context.Context, params CreateChannelParams) (Channel, error)
	MoveChannel(ctx context.Context, channelID, categoryID string) error
	ChannelOverwrites(ctx context.Context, channelID string) ([]Overwrite, error)
	ReplaceOverwrites(ctx context.Context, channelID string, overwrites []Overwrite) error
	DeleteChannel(ctx context.Context, channelID string) error
	PostMessage(ctx context.Context, channelID, content string) (messageID string, err error)
	PinMessage(ctx context.Context, channelID, messageID string) error
}

// CreateChannelParams describes a new article channel.
type CreateChannelParams struct {
	GuildID    string
	Name       string
	Topic      string
	CategoryID string
	Overwrites []Overwrite
}

// Store persists the owned BotConfig after every mutation.
type Store interface {
	Save(cfg *config.BotConfig) error
}
