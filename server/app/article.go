package app

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

const maxSlugLen = 90

// Slugify turns an article title into a channel name: lowercase
// alphanumerics with single dashes, capped at Discord's practical length.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	if s == "" {
		return "article"
	}
	return s
}

var deadlineLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	"Jan 2 2006 15:04",
	"Jan 2 15:04", // assumes current year
}

// ParseDeadline accepts the deadline formats writers actually type.
// Layouts without a year borrow it from now. The result is UTC.
func ParseDeadline(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = t.AddDate(now.Year(), 0, 0)
		}
		return t.UTC(), nil
	}
	return time.Time{}, errors.Errorf("unrecognized deadline %q, use YYYY-MM-DD HH:MM (24-hour)", s)
}

// ChannelTopic labels the channel with its article and deadline.
func ChannelTopic(title string, deadline time.Time) string {
	return fmt.Sprintf("Article: %s | [deadline: %s]", title, deadline.UTC().Format(time.RFC3339))
}

// Checklist is the pinned kickoff message for a new article channel.
func Checklist(title string, writers []string, deadline time.Time) string {
	mentions := "—"
	if len(writers) > 0 {
		tagged := make([]string, 0, len(writers))
		for _, id := range writers {
			tagged = append(tagged, "<@"+id+">")
		}
		mentions = strings.Join(tagged, " ")
	}
	unix := deadline.Unix()
	return fmt.Sprintf(
		"**Article:** %s\n**Writers:** %s\n**Deadline:** <t:%d:F> (<t:%d:R>)\n\n"+
			"**Checklist**\n"+
			"- [ ] Angle approved\n"+
			"- [ ] Sources identified\n"+
			"- [ ] Draft complete\n"+
			"- [ ] Edited by section\n"+
			"- [ ] Copy edit\n"+
			"- [ ] Final publish\n",
		title, mentions, unix, unix)
}
