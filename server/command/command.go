package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/exonian/articlebot/server/app"
	"github.com/exonian/articlebot/server/config"
)

const helpText = "**Article workflow commands**\n" +
	"* `/ping` — check the bot is alive\n" +
	"* `/setup` — create the categories and Editors role, bind this guild (admin)\n" +
	"* `/sync` — re-publish slash commands to this guild (admin)\n" +
	"* `/new-article title deadline [writers]` — create a private article channel (editors)\n" +
	"* `/archive [channel]` — lock a channel read-only and move it to the archive (editors)\n" +
	"* `/reopen channel` — move an archived article back to active (editors)\n" +
	"* `/set-deadline channel deadline` — change an article's deadline (editors)\n" +
	"* `/delete-article channel` — delete the channel and stop tracking it (editors)\n" +
	"* `/list-articles` — list active articles and deadlines\n"

// Poster sends one human-readable reply to whoever invoked the command.
type Poster interface {
	Post(text string)
}

// Syncer re-registers the slash commands against a guild.
type Syncer interface {
	SyncCommands(ctx context.Context, guildID string) error
}

// Invocation is a platform-neutral view of one command call. The discord
// package builds it from an interaction.
type Invocation struct {
	Command   string
	Args      map[string]string
	GuildID   string
	ChannelID string
	UserID    string
	Roles     []string
	IsAdmin   bool
}

// Runner executes one invocation. Commands never return user mistakes as
// errors: anything the invoker can act on is posted back as text, and the
// registry is never left half-mutated because all atomicity lives there.
type Runner struct {
	inv      Invocation
	articles app.ArticleService
	syncer   Syncer
	poster   Poster
	log      zerolog.Logger
	timeout  time.Duration
	now      func() time.Time
}

func NewRunner(inv Invocation, articles app.ArticleService, syncer Syncer, poster Poster, log zerolog.Logger, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Runner{
		inv:      inv,
		articles: articles,
		syncer:   syncer,
		poster:   poster,
		log:      log,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (r *Runner) isValid() error {
	if r.articles == nil || r.poster == nil {
		return errors.New("invalid arguments to command.Runner")
	}
	return nil
}

// Execute dispatches the invocation. The returned error is for internal
// wiring problems only; command outcomes go to the poster.
func (r *Runner) Execute() error {
	if err := r.isValid(); err != nil {
		return err
	}
	if r.inv.GuildID == "" {
		r.poster.Post("This command must be used in a server.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	switch r.inv.Command {
	case "ping":
		r.poster.Post("Pong!")
	case "setup":
		r.actionSetup(ctx)
	case "sync":
		r.actionSync(ctx)
	case "new-article":
		r.actionNewArticle(ctx)
	case "archive":
		r.actionArchive(ctx)
	case "reopen":
		r.actionReopen(ctx)
	case "set-deadline":
		r.actionSetDeadline(ctx)
	case "delete-article":
		r.actionDelete(ctx)
	case "list-articles":
		r.actionList()
	default:
		r.poster.Post(helpText)
	}
	return nil
}

// requireEditor gates the administrative commands: guild admins always
// pass, everyone else needs the Editors role.
func (r *Runner) requireEditor(ctx context.Context) bool {
	if r.inv.IsAdmin {
		return true
	}
	ws, err := r.articles.Workspace(ctx)
	if err != nil {
		r.postFailure("look up the Editors role", err)
		return false
	}
	for _, id := range r.inv.Roles {
		if id == ws.EditorRoleID {
			return true
		}
	}
	r.poster.Post("You need the Editors role to run this command.")
	return false
}

func (r *Runner) actionSetup(ctx context.Context) {
	if !r.inv.IsAdmin {
		r.poster.Post("Only a server admin can run setup.")
		return
	}
	ws, err := r.articles.Setup(ctx, r.inv.GuildID)
	if err != nil {
		r.postFailure("complete setup", err)
		return
	}
	r.poster.Post(fmt.Sprintf(
		"Setup complete.\nActive: <#%s>\nArchived: <#%s>\nEditors role: <@&%s>",
		ws.ActiveCategoryID, ws.ArchivedCategoryID, ws.EditorRoleID))
}

func (r *Runner) actionSync(ctx context.Context) {
	if !r.inv.IsAdmin {
		r.poster.Post("Only a server admin can run sync.")
		return
	}
	if r.syncer == nil {
		r.poster.Post("Command syncing is not available.")
		return
	}
	if err := r.syncer.SyncCommands(ctx, r.inv.GuildID); err != nil {
		r.postFailure("sync commands", err)
		return
	}
	r.poster.Post("Commands synced to this server.")
}

func (r *Runner) actionNewArticle(ctx context.Context) {
	if !r.requireEditor(ctx) {
		return
	}

	title := strings.TrimSpace(r.inv.Args["title"])
	if title == "" {
		r.poster.Post("Please give the article a title.")
		return
	}

	deadline, err := app.ParseDeadline(r.inv.Args["deadline"], r.now())
	if err != nil {
		r.poster.Post("Couldn't parse the deadline. Use `YYYY-MM-DD HH:MM` (24-hour).")
		return
	}

	writers := ParseMentions(r.inv.Args["writers"])
	rec, err := r.articles.Create(ctx, title, deadline, writers)
	if err != nil {
		if errors.Is(err, app.ErrDuplicateArticle) {
			r.poster.Post(fmt.Sprintf("An article channel named `%s` already exists in the active category.", app.Slugify(title)))
			return
		}
		r.postFailure("create the article channel", err)
		return
	}

	reply := fmt.Sprintf("Created <#%s> for **%s**, deadline <t:%d:F>.", rec.ChannelID, rec.Title, rec.Deadline.Unix())
	if len(writers) == 0 {
		reply += " Writers added: none."
	}
	r.poster.Post(reply)
}

func (r *Runner) actionArchive(ctx context.Context) {
	if !r.requireEditor(ctx) {
		return
	}
	channelID := r.targetChannel()
	if err := r.articles.Archive(ctx, channelID); err != nil {
		if errors.Is(err, app.ErrUnknownArticle) {
			r.poster.Post(fmt.Sprintf("<#%s> is not a tracked article channel.", channelID))
			return
		}
		r.postFailure("archive the channel", err)
		return
	}
	r.poster.Post(fmt.Sprintf("Archived <#%s> (posting locked; Editors can still post).", channelID))
}

func (r *Runner) actionReopen(ctx context.Context) {
	if !r.requireEditor(ctx) {
		return
	}
	channelID := r.targetChannel()
	if err := r.articles.Reopen(ctx, channelID); err != nil {
		if errors.Is(err, app.ErrUnknownArticle) {
			r.poster.Post(fmt.Sprintf("<#%s> is not a tracked article channel.", channelID))
			return
		}
		r.postFailure("reopen the channel", err)
		return
	}
	r.poster.Post(fmt.Sprintf("Reopened <#%s>.", channelID))
}

func (r *Runner) actionSetDeadline(ctx context.Context) {
	if !r.requireEditor(ctx) {
		return
	}
	channelID := r.targetChannel()
	deadline, err := app.ParseDeadline(r.inv.Args["deadline"], r.now())
	if err != nil {
		r.poster.Post("Couldn't parse the deadline. Use `YYYY-MM-DD HH:MM` (24-hour).")
		return
	}
	if err := r.articles.SetDeadline(ctx, channelID, deadline); err != nil {
		if errors.Is(err, app.ErrUnknownArticle) {
			r.poster.Post(fmt.Sprintf("<#%s> is not a tracked article channel.", channelID))
			return
		}
		r.postFailure("update the deadline", err)
		return
	}
	r.poster.Post(fmt.Sprintf("Deadline for <#%s> is now <t:%d:F>.", channelID, deadline.Unix()))
}

func (r *Runner) actionDelete(ctx context.Context) {
	if !r.requireEditor(ctx) {
		return
	}
	channelID := r.targetChannel()
	if err := r.articles.Delete(ctx, channelID); err != nil {
		if errors.Is(err, app.ErrUnknownArticle) {
			r.poster.Post(fmt.Sprintf("<#%s> is not a tracked article channel.", channelID))
			return
		}
		r.postFailure("delete the article", err)
		return
	}
	r.poster.Post("Article deleted.")
}

func (r *Runner) actionList() {
	records := r.articles.List()

	var lines []string
	var archived int
	for _, rec := range records {
		if rec.State == config.StateArchived {
			archived++
			continue
		}
		lines = append(lines, fmt.Sprintf("• <#%s> — deadline <t:%d:R>", rec.ChannelID, rec.Deadline.Unix()))
	}

	if len(lines) == 0 {
		msg := "No active article channels."
		if archived > 0 {
			msg += fmt.Sprintf(" (%d archived)", archived)
		}
		r.poster.Post(msg)
		return
	}
	if archived > 0 {
		lines = append(lines, fmt.Sprintf("…and %d archived.", archived))
	}
	r.poster.Post(strings.Join(lines, "\n"))
}

// targetChannel prefers an explicit channel argument and falls back to the
// channel the command was used in.
func (r *Runner) targetChannel() string {
	if id := r.inv.Args["channel"]; id != "" {
		return id
	}
	return r.inv.ChannelID
}

func (r *Runner) postFailure(what string, err error) {
	r.log.Error().Err(err).Str("command", r.inv.Command).Str("user_id", r.inv.UserID).Msg("command failed")
	r.poster.Post(fmt.Sprintf("Couldn't %s: %v", what, err))
}

// ParseMentions pulls user IDs out of a space-separated mention list, the
// way writers are passed to new-article.
func ParseMentions(s string) []string {
	var ids []string
	seen := map[string]bool{}
	for _, field := range strings.Fields(s) {
		if !strings.HasPrefix(field, "<@") || !strings.HasSuffix(field, ">") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(field, "<@"), ">")
		id = strings.TrimPrefix(id, "!")
		if id == "" || seen[id] {
			continue
		}
		for _, r := range id {
			if r < '0' || r > '9' {
				id = ""
				break
			}
		}
		if id != "" {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
