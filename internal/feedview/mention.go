package feedview

import (
	"regexp"
	"strings"
)

var (
	mentionRegex  = regexp.MustCompile(`@(\w+)`)
	trailingToken = regexp.MustCompile(`@(\w*)$`)
)

// ExtractMentions returns the @handle tokens in a comment body, in order,
// without duplicates
func ExtractMentions(text string) []string {
	matches := mentionRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	handles := make([]string, 0, len(matches))
	for _, m := range matches {
		handle := strings.ToLower(m[1])
		if seen[handle] {
			continue
		}
		seen[handle] = true
		handles = append(handles, handle)
	}
	return handles
}

// MentionQuery returns the unterminated @token ending at the cursor, if
// any. Empty token with ok=true means the author just typed "@".
func MentionQuery(text string, cursor int) (token string, ok bool) {
	if cursor < 0 || cursor > len(text) {
		return "", false
	}
	m := trailingToken.FindStringSubmatch(text[:cursor])
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// InsertMention replaces the partial @token before the cursor with the
// selected username and returns the new text and cursor position. The
// replacement is cursor-offset based, not a full-text search-and-replace.
func InsertMention(text string, cursor int, username string) (string, int) {
	if cursor < 0 || cursor > len(text) {
		cursor = len(text)
	}
	before := text[:cursor]
	after := text[cursor:]

	at := strings.LastIndex(before, "@")
	if at < 0 {
		return text, cursor
	}

	newBefore := before[:at] + "@" + username + " "
	return newBefore + after, len(newBefore)
}
