// Package format renders API snapshots as display text. Every function is
// pure: no I/O, no failures, defensive defaults for absent fields.
package format

import (
	"fmt"
	"strings"

	"github.com/finchline/finchline/internal/shared/stringutils"
	"github.com/finchline/finchline/internal/xapi"
)

const (
	verifiedMark = "✓"
	privateMark  = "🔒"
	joinedLayout = "Jan 2, 2006"
)

func handleLine(u xapi.User) string {
	handle := u.Username
	if handle == "" {
		handle = "unknown"
	}
	line := "@" + handle
	if u.Verified {
		line += " " + verifiedMark
	}
	return line
}

func statusURL(handle, id string) string {
	if handle == "" {
		return "https://twitter.com/i/web/status/" + id
	}
	return "https://twitter.com/" + handle + "/status/" + id
}

// Posted confirms a created post with its permalink.
func Posted(t xapi.Tweet) string {
	return fmt.Sprintf("Tweet posted!\n%s", statusURL("", t.ID))
}

// SearchResults renders a numbered block of tweets with their authors.
// Authors missing from the expansion render as "Unknown".
func SearchResults(query string, tweets []xapi.Tweet, authors map[string]xapi.User) string {
	if len(tweets) == 0 {
		return fmt.Sprintf("No tweets found for %q.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d tweets for %q:\n", len(tweets), query)
	for i, t := range tweets {
		author, ok := authors[t.AuthorID]
		name := author.Name
		if !ok || name == "" {
			name = "Unknown"
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, handleLine(author), name)
		fmt.Fprintf(&sb, "   %s\n", t.Text)
		fmt.Fprintf(&sb, "   %d retweets · %d replies · %d likes · %d quotes\n",
			t.Retweets, t.Replies, t.Likes, t.Quotes)
		fmt.Fprintf(&sb, "   %s\n", statusURL(author.Username, t.ID))
	}
	return sb.String()
}

// Profile renders a full account view. Optional lines (bio, join date) are
// omitted when the field is absent.
func Profile(u xapi.User) string {
	var sb strings.Builder
	sb.WriteString(handleLine(u) + "\n")
	if u.Name != "" {
		sb.WriteString(u.Name + "\n")
	}
	if u.Bio != "" {
		sb.WriteString("Bio: " + u.Bio + "\n")
	}
	fmt.Fprintf(&sb, "Followers: %d · Following: %d\n", u.Followers, u.Following)
	if !u.CreatedAt.IsZero() {
		sb.WriteString("Joined: " + u.CreatedAt.Format(joinedLayout) + "\n")
	}
	if u.Username != "" {
		sb.WriteString("https://twitter.com/" + u.Username)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ProfileUpdated confirms an update and echoes which fields changed.
func ProfileUpdated(changed []string) string {
	if len(changed) == 0 {
		return "Profile updated."
	}
	return "Profile updated: " + strings.Join(changed, ", ") + "."
}

// Followed confirms a created relationship.
func Followed(u xapi.User) string {
	return fmt.Sprintf("Now following %s (%s).", handleLine(u), orUnknown(u.Name))
}

// Unfollowed confirms a removed relationship.
func Unfollowed(u xapi.User) string {
	return fmt.Sprintf("Unfollowed %s (%s).", handleLine(u), orUnknown(u.Name))
}

// Users renders a condensed numbered roster. Bios are cut to the condensed
// limit; empty bios render no bio line.
func Users(title string, users []xapi.User) string {
	if len(users) == 0 {
		return title + ": none found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d):\n", title, len(users))
	for i, u := range users {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, handleLine(u), orUnknown(u.Name))
		if u.Bio != "" {
			fmt.Fprintf(&sb, "   %s\n", stringutils.Condense(u.Bio))
		}
	}
	return sb.String()
}

// Lists renders a condensed numbered block of lists.
func Lists(title string, lists []xapi.List) string {
	if len(lists) == 0 {
		return title + ": none found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d):\n", title, len(lists))
	for i, l := range lists {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%d. %s%s\n", i+1, l.Name, privateSuffix(l))
		if l.Description != "" {
			fmt.Fprintf(&sb, "   %s\n", stringutils.Condense(l.Description))
		}
		fmt.Fprintf(&sb, "   %d members · %d followers\n", l.MemberCount, l.FollowerCount)
	}
	return sb.String()
}

// ListInfo renders one list in full. The description line is omitted when
// the list has none.
func ListInfo(l xapi.List) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "List: %s%s\n", l.Name, privateSuffix(l))
	if l.Description != "" {
		sb.WriteString("Description: " + l.Description + "\n")
	}
	fmt.Fprintf(&sb, "Members: %d · Followers: %d\n", l.MemberCount, l.FollowerCount)
	fmt.Fprintf(&sb, "ID: %s", l.ID)
	return sb.String()
}

// ListCreated confirms a created list.
func ListCreated(l xapi.List) string {
	return fmt.Sprintf("List %q created%s (id %s).", l.Name, visibilityNote(l), l.ID)
}

func privateSuffix(l xapi.List) string {
	if l.Private {
		return " " + privateMark
	}
	return ""
}

func visibilityNote(l xapi.List) string {
	if l.Private {
		return " as private"
	}
	return ""
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
