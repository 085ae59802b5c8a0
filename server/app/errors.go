package app

import "github.com/pkg/errors"

var (
	// ErrPermissionApply means the platform rejected a permission change,
	// typically because the bot's role sits too low in the role list.
	ErrPermissionApply = errors.New("could not apply channel permissions")
	// ErrDuplicateArticle means an identically named channel already
	// exists in the active category.
	ErrDuplicateArticle = errors.New("an article channel with that name already exists")
	// ErrUnknownArticle means the channel is not tracked as an article.
	ErrUnknownArticle = errors.New("no article is tracked for that channel")
	// ErrNotConfigured means setup has not run in any guild yet.
	ErrNotConfigured = errors.New("the bot has not been set up yet; run setup first")
	// ErrGuildMismatch means setup was invoked from a second guild. The
	// guild binding is immutable after first setup.
	ErrGuildMismatch = errors.New("the bot is already bound to a different guild")
)
