package config

import (
	"time"
)

// Defaults mirror the categories and role the bot manages when nothing
// else has been configured.
const (
	DefaultActiveCategoryName   = "Active Articles"
	DefaultArchivedCategoryName = "Archived Articles"
	DefaultEditorRoleName       = "Editors"
)

// ArticleState is the lifecycle state of an article channel.
type ArticleState string

const (
	StateActive   ArticleState = "active"
	StateArchived ArticleState = "archived"
)

// ArticleRecord tracks one article channel. ChannelID is immutable once the
// channel exists; Deadline is always stored in UTC.
type ArticleRecord struct {
	ChannelID string       `json:"channel_id"`
	Title     string       `json:"title"`
	Deadline  time.Time    `json:"deadline"`
	State     ArticleState `json:"state"`
	Writers   []string     `json:"writers,omitempty"`
}

// BotConfig is the single persisted document. GuildID is pinned on first
// setup and never changes afterwards.
type BotConfig struct {
	GuildID              string                    `json:"guild_id"`
	ActiveCategoryName   string                    `json:"active_category_name"`
	ArchivedCategoryName string                    `json:"archived_category_name"`
	EditorRoleName       string                    `json:"editor_role_name"`
	Articles             map[string]*ArticleRecord `json:"articles"`
}

// Default returns the config used when no state file exists yet.
func Default() *BotConfig {
	return &BotConfig{
		ActiveCategoryName:   DefaultActiveCategoryName,
		ArchivedCategoryName: DefaultArchivedCategoryName,
		EditorRoleName:       DefaultEditorRoleName,
		Articles:             map[string]*ArticleRecord{},
	}
}

func (c *BotConfig) normalize() {
	if c.ActiveCategoryName == "" {
		c.ActiveCategoryName = DefaultActiveCategoryName
	}
	if c.ArchivedCategoryName == "" {
		c.ArchivedCategoryName = DefaultArchivedCategoryName
	}
	if c.EditorRoleName == "" {
		c.EditorRoleName = DefaultEditorRoleName
	}
	if c.Articles == nil {
		c.Articles = map[string]*ArticleRecord{}
	}
}
