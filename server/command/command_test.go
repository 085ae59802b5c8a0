package command_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exonian/articlebot/server/app"
	"github.com/exonian/articlebot/server/app/mocks"
	"github.com/exonian/articlebot/server/command"
	"github.com/exonian/articlebot/server/config"
)

type recordingPoster struct {
	posts []string
}

func (p *recordingPoster) Post(text string) {
	p.posts = append(p.posts, text)
}

func (p *recordingPoster) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, p.posts, "command posted no reply")
	return p.posts[len(p.posts)-1]
}

type stubSyncer struct {
	guildID string
	err     error
}

func (s *stubSyncer) SyncCommands(_ context.Context, guildID string) error {
	s.guildID = guildID
	return s.err
}

type runnerFixture struct {
	articles *mocks.MockArticleService
	poster   *recordingPoster
	syncer   *stubSyncer
}

func newRunnerFixture(t *testing.T) *runnerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return &runnerFixture{
		articles: mocks.NewMockArticleService(ctrl),
		poster:   &recordingPoster{},
		syncer:   &stubSyncer{},
	}
}

func (f *runnerFixture) run(t *testing.T, inv command.Invocation) {
	t.Helper()
	r := command.NewRunner(inv, f.articles, f.syncer, f.poster, zerolog.Nop(), time.Second)
	require.NoError(t, r.Execute())
}

func editorInvocation(cmd string, args map[string]string) command.Invocation {
	return command.Invocation{
		Command:   cmd,
		Args:      args,
		GuildID:   "g1",
		ChannelID: "c-here",
		UserID:    "u1",
		Roles:     []string{"role-editors"},
	}
}

func adminInvocation(cmd string, args map[string]string) command.Invocation {
	inv := editorInvocation(cmd, args)
	inv.Roles = nil
	inv.IsAdmin = true
	return inv
}

func workspaceFixture() app.Workspace {
	return app.Workspace{
		GuildID:            "g1",
		ActiveCategoryID:   "cat-active",
		ArchivedCategoryID: "cat-archived",
		EditorRoleID:       "role-editors",
		EveryoneRoleID:     "g1",
	}
}

func TestExecuteOutsideGuild(t *testing.T) {
	f := newRunnerFixture(t)
	inv := editorInvocation("archive", nil)
	inv.GuildID = ""

	f.run(t, inv)
	assert.Equal(t, "This command must be used in a server.", f.poster.last(t))
}

func TestExecutePing(t *testing.T) {
	f := newRunnerFixture(t)
	f.run(t, editorInvocation("ping", nil))
	assert.Equal(t, "Pong!", f.poster.last(t))
}

func TestExecuteUnknownCommandShowsHelp(t *testing.T) {
	f := newRunnerFixture(t)
	f.run(t, editorInvocation("frobnicate", nil))
	assert.Contains(t, f.poster.last(t), "/new-article")
}

func TestEditorGate(t *testing.T) {
	t.Run("non-editor-is-denied", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Workspace(gomock.Any()).Return(workspaceFixture(), nil)
		// No Archive expectation: the gate must stop the call.

		inv := editorInvocation("archive", nil)
		inv.Roles = []string{"role-sports"}
		f.run(t, inv)
		assert.Equal(t, "You need the Editors role to run this command.", f.poster.last(t))
	})

	t.Run("editor-role-passes", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Workspace(gomock.Any()).Return(workspaceFixture(), nil)
		f.articles.EXPECT().Archive(gomock.Any(), "c-here").Return(nil)

		f.run(t, editorInvocation("archive", nil))
		assert.Contains(t, f.poster.last(t), "Archived <#c-here>")
	})

	t.Run("admin-bypasses-role-lookup", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Archive(gomock.Any(), "c-here").Return(nil)

		f.run(t, adminInvocation("archive", nil))
		assert.Contains(t, f.poster.last(t), "Archived")
	})

	t.Run("unconfigured-bot-reports-failure", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Workspace(gomock.Any()).Return(app.Workspace{}, app.ErrNotConfigured)

		f.run(t, editorInvocation("archive", nil))
		assert.Contains(t, f.poster.last(t), "Couldn't look up the Editors role")
	})
}

func TestSetupCommand(t *testing.T) {
	t.Run("admin-only", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.run(t, editorInvocation("setup", nil))
		assert.Equal(t, "Only a server admin can run setup.", f.poster.last(t))
	})

	t.Run("reports-created-workspace", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Setup(gomock.Any(), "g1").Return(workspaceFixture(), nil)

		f.run(t, adminInvocation("setup", nil))
		reply := f.poster.last(t)
		assert.Contains(t, reply, "<#cat-active>")
		assert.Contains(t, reply, "<@&role-editors>")
	})

	t.Run("guild-mismatch-surfaces", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Setup(gomock.Any(), "g1").Return(app.Workspace{}, app.ErrGuildMismatch)

		f.run(t, adminInvocation("setup", nil))
		assert.Contains(t, f.poster.last(t), "Couldn't complete setup")
	})
}

func TestSyncCommand(t *testing.T) {
	f := newRunnerFixture(t)
	f.run(t, adminInvocation("sync", nil))
	assert.Equal(t, "Commands synced to this server.", f.poster.last(t))
	assert.Equal(t, "g1", f.syncer.guildID)
}

func TestNewArticleCommand(t *testing.T) {
	deadline := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)

	t.Run("creates-and-reports", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().
			Create(gomock.Any(), "Fall Sports Preview", gomock.Any(), []string{"111", "222"}).
			Return(&config.ArticleRecord{ChannelID: "c1", Title: "Fall Sports Preview", Deadline: deadline, State: config.StateActive}, nil)

		f.run(t, adminInvocation("new-article", map[string]string{
			"title":    "Fall Sports Preview",
			"deadline": "2026-09-15 18:00",
			"writers":  "<@111> <@!222>",
		}))
		reply := f.poster.last(t)
		assert.Contains(t, reply, "Created <#c1>")
		assert.Contains(t, reply, fmt.Sprintf("<t:%d:F>", deadline.Unix()))
	})

	t.Run("bad-deadline-never-reaches-the-registry", func(t *testing.T) {
		f := newRunnerFixture(t)

		f.run(t, adminInvocation("new-article", map[string]string{
			"title":    "Op-Ed",
			"deadline": "next tuesday",
		}))
		assert.Contains(t, f.poster.last(t), "Couldn't parse the deadline")
	})

	t.Run("missing-title-rejected", func(t *testing.T) {
		f := newRunnerFixture(t)

		f.run(t, adminInvocation("new-article", map[string]string{
			"title":    "   ",
			"deadline": "2026-09-15",
		}))
		assert.Equal(t, "Please give the article a title.", f.poster.last(t))
	})

	t.Run("duplicate-gets-a-friendly-reply", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().
			Create(gomock.Any(), "Op-Ed", gomock.Any(), gomock.Nil()).
			Return(nil, fmt.Errorf("%w: #op-ed", app.ErrDuplicateArticle))

		f.run(t, adminInvocation("new-article", map[string]string{
			"title":    "Op-Ed",
			"deadline": "2026-09-15",
		}))
		assert.Contains(t, f.poster.last(t), "`op-ed` already exists")
	})
}

func TestChannelCommands(t *testing.T) {
	t.Run("explicit-channel-argument-wins", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Archive(gomock.Any(), "c-target").Return(nil)

		f.run(t, adminInvocation("archive", map[string]string{"channel": "c-target"}))
		assert.Contains(t, f.poster.last(t), "<#c-target>")
	})

	t.Run("untracked-channel", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Archive(gomock.Any(), "c-here").Return(fmt.Errorf("%w: c-here", app.ErrUnknownArticle))

		f.run(t, adminInvocation("archive", nil))
		assert.Equal(t, "<#c-here> is not a tracked article channel.", f.poster.last(t))
	})

	t.Run("reopen", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Reopen(gomock.Any(), "c1").Return(nil)

		f.run(t, adminInvocation("reopen", map[string]string{"channel": "c1"}))
		assert.Equal(t, "Reopened <#c1>.", f.poster.last(t))
	})

	t.Run("set-deadline", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().
			SetDeadline(gomock.Any(), "c1", time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)).
			Return(nil)

		f.run(t, adminInvocation("set-deadline", map[string]string{
			"channel":  "c1",
			"deadline": "2026-10-01 12:00",
		}))
		assert.Contains(t, f.poster.last(t), "Deadline for <#c1>")
	})

	t.Run("delete-article", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Delete(gomock.Any(), "c1").Return(nil)

		f.run(t, adminInvocation("delete-article", map[string]string{"channel": "c1"}))
		assert.Equal(t, "Article deleted.", f.poster.last(t))
	})

	t.Run("internal-failure-is-posted", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().Archive(gomock.Any(), "c-here").Return(errors.New("api exploded"))

		f.run(t, adminInvocation("archive", nil))
		assert.Contains(t, f.poster.last(t), "Couldn't archive the channel")
	})
}

func TestListArticlesCommand(t *testing.T) {
	d1 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)

	t.Run("active-articles-with-archived-count", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().List().Return([]config.ArticleRecord{
			{ChannelID: "c1", Title: "First", Deadline: d1, State: config.StateActive},
			{ChannelID: "c2", Title: "Second", Deadline: d2, State: config.StateActive},
			{ChannelID: "c3", Title: "Old", Deadline: d1, State: config.StateArchived},
		})

		f.run(t, editorInvocation("list-articles", nil))
		reply := f.poster.last(t)
		assert.Contains(t, reply, fmt.Sprintf("• <#c1> — deadline <t:%d:R>", d1.Unix()))
		assert.Contains(t, reply, "• <#c2>")
		assert.Contains(t, reply, "…and 1 archived.")
		assert.NotContains(t, reply, "<#c3>")
	})

	t.Run("empty-registry", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().List().Return(nil)

		f.run(t, editorInvocation("list-articles", nil))
		assert.Equal(t, "No active article channels.", f.poster.last(t))
	})

	t.Run("only-archived", func(t *testing.T) {
		f := newRunnerFixture(t)
		f.articles.EXPECT().List().Return([]config.ArticleRecord{
			{ChannelID: "c3", Title: "Old", Deadline: d1, State: config.StateArchived},
		})

		f.run(t, editorInvocation("list-articles", nil))
		assert.Equal(t, "No active article channels. (1 archived)", f.poster.last(t))
	})
}

func TestParseMentions(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want []string
	}{
		"plain-mentions":     {"<@111> <@222>", []string{"111", "222"}},
		"nickname-mentions":  {"<@!111>", []string{"111"}},
		"duplicates-dropped": {"<@111> <@!111>", []string{"111"}},
		"junk-ignored":       {"hello <@abc> <@> @111", nil},
		"empty":              {"", nil},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, command.ParseMentions(tc.in))
		})
	}
}
