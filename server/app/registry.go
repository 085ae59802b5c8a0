package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/exonian/articlebot/server/config"
)

// ArticleService is the command-facing surface of the registry.
type ArticleService interface {
	Setup(ctx context.Context, guildID string) (Workspace, error)
	Workspace(ctx context.Context) (Workspace, error)
	Create(ctx context.Context, title string, deadline time.Time, writerIDs []string) (*config.ArticleRecord, error)
	Archive(ctx context.Context, channelID string) error
	Reopen(ctx context.Context, channelID string) error
	SetDeadline(ctx context.Context, channelID string, deadline time.Time) error
	Delete(ctx context.Context, channelID string) error
	List() []config.ArticleRecord
}

// Registry owns the in-memory article state and is the single mutation
// entry point shared by the command handlers and the sweeper. Every
// transition re-checks current state under the lock and persists
// synchronously before returning.
type Registry struct {
	mu      sync.Mutex
	cfg     *config.BotConfig
	store   Store
	gateway ChannelGateway
	log     zerolog.Logger
}

var _ ArticleService = (*Registry)(nil)

func NewRegistry(cfg *config.BotConfig, store Store, gateway ChannelGateway, log zerolog.Logger) *Registry {
	if cfg.Articles == nil {
		cfg.Articles = map[string]*config.ArticleRecord{}
	}
	return &Registry{
		cfg:     cfg,
		store:   store,
		gateway: gateway,
		log:     log,
	}
}

// Setup binds the bot to a guild and makes sure the categories and editor
// role exist. The binding is permanent: a second guild gets ErrGuildMismatch.
func (r *Registry) Setup(ctx context.Context, guildID string) (Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.GuildID != "" && r.cfg.GuildID != guildID {
		return Workspace{}, ErrGuildMismatch
	}

	ws, err := r.gateway.EnsureWorkspace(ctx, r.names(guildID))
	if err != nil {
		return Workspace{}, errors.Wrap(err, "ensuring categories and role")
	}

	r.cfg.GuildID = guildID
	if err := r.persist(); err != nil {
		return Workspace{}, err
	}

	r.log.Info().Str("guild_id", guildID).Msg("setup complete")
	return ws, nil
}

// Workspace resolves the managed category and role IDs for the bound guild.
func (r *Registry) Workspace(ctx context.Context) (Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workspace(ctx)
}

func (r *Registry) workspace(ctx context.Context) (Workspace, error) {
	if r.cfg.GuildID == "" {
		return Workspace{}, ErrNotConfigured
	}
	ws, err := r.gateway.EnsureWorkspace(ctx, r.names(r.cfg.GuildID))
	if err != nil {
		return Workspace{}, errors.Wrap(err, "ensuring categories and role")
	}
	return ws, nil
}

func (r *Registry) names(guildID string) WorkspaceNames {
	return WorkspaceNames{
		GuildID:          guildID,
		ActiveCategory:   r.cfg.ActiveCategoryName,
		ArchivedCategory: r.cfg.ArchivedCategoryName,
		EditorRole:       r.cfg.EditorRoleName,
	}
}

// Create allocates a new article channel in the active category and inserts
// an Active record. An identically named channel already in the active
// category fails with ErrDuplicateArticle.
func (r *Registry) Create(ctx context.Context, title string, deadline time.Time, writerIDs []string) (*config.ArticleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, err := r.workspace(ctx)
	if err != nil {
		return nil, err
	}

	slug := Slugify(title)
	existing, err := r.gateway.ChannelsInCategory(ctx, ws.GuildID, ws.ActiveCategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "listing active article channels")
	}
	for _, ch := range existing {
		if ch.Name == slug {
			return nil, fmt.Errorf("%w: #%s", ErrDuplicateArticle, slug)
		}
	}

	deadline = deadline.UTC()
	ch, err := r.gateway.CreateChannel(ctx, CreateChannelParams{
		GuildID:    ws.GuildID,
		Name:       slug,
		Topic:      ChannelTopic(title, deadline),
		CategoryID: ws.ActiveCategoryID,
		Overwrites: ActiveOverwrites(ws, writerIDs),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating channel #%s", slug)
	}

	rec := &config.ArticleRecord{
		ChannelID: ch.ID,
		Title:     title,
		Deadline:  deadline,
		State:     config.StateActive,
		Writers:   writerIDs,
	}
	r.cfg.Articles[ch.ID] = rec
	if err := r.persist(); err != nil {
		// The channel exists but the record is only in memory. Surface
		// the failure; Reconcile reports the divergence on next start.
		return rec, err
	}

	// The pinned checklist is a courtesy, not part of the transition.
	if msgID, err := r.gateway.PostMessage(ctx, ch.ID, Checklist(title, writerIDs, deadline)); err != nil {
		r.log.Warn().Err(err).Str("channel_id", ch.ID).Msg("could not post checklist")
	} else if err := r.gateway.PinMessage(ctx, ch.ID, msgID); err != nil {
		r.log.Warn().Err(err).Str("channel_id", ch.ID).Msg("could not pin checklist")
	}

	r.log.Info().Str("channel_id", ch.ID).Str("title", title).Time("deadline", deadline).Msg("article created")
	return rec, nil
}

// Archive locks an article channel down and moves it to the archived
// category. Valid from Active; calling it on an already archived article is
// a no-op that touches no platform API. Order matters: permissions, then
// category move, then state, then persist — a failure before the state write
// leaves the record Active and reports the error to the caller.
func (r *Registry) Archive(ctx context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.cfg.Articles[channelID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArticle, channelID)
	}
	if rec.State == config.StateArchived {
		return nil
	}

	ws, err := r.workspace(ctx)
	if err != nil {
		return err
	}

	existing, err := r.gateway.ChannelOverwrites(ctx, channelID)
	if err != nil {
		return fmt.Errorf("%w: reading overwrites: %v", ErrPermissionApply, err)
	}
	if err := r.gateway.ReplaceOverwrites(ctx, channelID, ArchivedOverwrites(ws, existing)); err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionApply, err)
	}
	if err := r.gateway.MoveChannel(ctx, channelID, ws.ArchivedCategoryID); err != nil {
		return errors.Wrapf(err, "moving channel %s to %s", channelID, r.cfg.ArchivedCategoryName)
	}

	rec.State = config.StateArchived
	if err := r.persist(); err != nil {
		// Permissions and category already changed; memory now matches
		// the live guild but not the file. Keep the new state and flag.
		r.log.Error().Err(err).Str("channel_id", channelID).Msg("archived but state write failed, stored record still shows active")
		return err
	}

	r.log.Info().Str("channel_id", channelID).Str("title", rec.Title).Msg("article archived")
	return nil
}

// Reopen is the reverse of Archive: valid from Archived, no-op from Active.
// Explicit command only — the sweeper never reopens anything.
func (r *Registry) Reopen(ctx context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.cfg.Articles[channelID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArticle, channelID)
	}
	if rec.State == config.StateActive {
		return nil
	}

	ws, err := r.workspace(ctx)
	if err != nil {
		return err
	}

	if err := r.gateway.ReplaceOverwrites(ctx, channelID, ActiveOverwrites(ws, rec.Writers)); err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionApply, err)
	}
	if err := r.gateway.MoveChannel(ctx, channelID, ws.ActiveCategoryID); err != nil {
		return errors.Wrapf(err, "moving channel %s to %s", channelID, r.cfg.ActiveCategoryName)
	}

	rec.State = config.StateActive
	if err := r.persist(); err != nil {
		r.log.Error().Err(err).Str("channel_id", channelID).Msg("reopened but state write failed, stored record still shows archived")
		return err
	}

	r.log.Info().Str("channel_id", channelID).Str("title", rec.Title).Msg("article reopened")
	return nil
}

// SetDeadline changes an article's deadline. Deadlines only ever move
// through this explicit edit.
func (r *Registry) SetDeadline(ctx context.Context, channelID string, deadline time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.cfg.Articles[channelID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArticle, channelID)
	}

	rec.Deadline = deadline.UTC()
	if err := r.persist(); err != nil {
		return err
	}

	r.log.Info().Str("channel_id", channelID).Time("deadline", rec.Deadline).Msg("deadline updated")
	return nil
}

// Delete removes the channel and its record. The only way a record is ever
// destroyed.
func (r *Registry) Delete(ctx context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.cfg.Articles[channelID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArticle, channelID)
	}

	if err := r.gateway.DeleteChannel(ctx, channelID); err != nil {
		return errors.Wrapf(err, "deleting channel %s", channelID)
	}

	delete(r.cfg.Articles, channelID)
	if err := r.persist(); err != nil {
		return err
	}

	r.log.Info().Str("channel_id", channelID).Str("title", rec.Title).Msg("article deleted")
	return nil
}

// List returns a snapshot of all records sorted by deadline.
func (r *Registry) List() []config.ArticleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]config.ArticleRecord, 0, len(r.cfg.Articles))
	for _, rec := range r.cfg.Articles {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Deadline.Equal(out[j].Deadline) {
			return out[i].ChannelID < out[j].ChannelID
		}
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}

// Due returns the articles that are still active with a deadline at or
// before now. Eligibility is computed from the absolute deadline, so a
// sweep after downtime still catches everything that expired meanwhile.
func (r *Registry) Due(now time.Time) []config.ArticleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []config.ArticleRecord
	for _, rec := range r.cfg.Articles {
		if rec.State == config.StateActive && !rec.Deadline.After(now) {
			due = append(due, *rec)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ChannelID < due[j].ChannelID })
	return due
}

// Reconcile compares persisted article states against the guild's actual
// category layout and reports mismatches, the degraded condition left
// behind when a persist failed after the platform side effects succeeded.
// It never repairs anything on its own.
func (r *Registry) Reconcile(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, err := r.workspace(ctx)
	if err != nil {
		return nil, err
	}

	categoryOf := map[string]string{}
	for _, catID := range []string{ws.ActiveCategoryID, ws.ArchivedCategoryID} {
		chs, err := r.gateway.ChannelsInCategory(ctx, ws.GuildID, catID)
		if err != nil {
			return nil, errors.Wrap(err, "listing article channels")
		}
		for _, ch := range chs {
			categoryOf[ch.ID] = catID
		}
	}

	var mismatches []string
	for id, rec := range r.cfg.Articles {
		cat, found := categoryOf[id]
		switch {
		case !found:
			mismatches = append(mismatches, fmt.Sprintf("article %q (%s) has no channel in either category", rec.Title, id))
		case rec.State == config.StateActive && cat == ws.ArchivedCategoryID:
			mismatches = append(mismatches, fmt.Sprintf("article %q (%s) is stored active but its channel is archived", rec.Title, id))
		case rec.State == config.StateArchived && cat == ws.ActiveCategoryID:
			mismatches = append(mismatches, fmt.Sprintf("article %q (%s) is stored archived but its channel is active", rec.Title, id))
		}
	}
	sort.Strings(mismatches)

	for _, m := range mismatches {
		r.log.Warn().Str("mismatch", m).Msg("state divergence, manual reconciliation needed")
	}
	return mismatches, nil
}

// announceDeadline posts the pre-archival notice. Best effort.
func (r *Registry) announceDeadline(ctx context.Context, channelID string) {
	if _, err := r.gateway.PostMessage(ctx, channelID, "⏰ Deadline passed — archiving channel."); err != nil {
		r.log.Warn().Err(err).Str("channel_id", channelID).Msg("could not post archival notice")
	}
}

func (r *Registry) persist() error {
	if err := r.store.Save(r.cfg); err != nil {
		return errors.Wrap(err, "writing article state")
	}
	return nil
}
