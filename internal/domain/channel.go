package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// MentionPrefix is prepended to every stored channel handle
const MentionPrefix = "@"

var handlePattern = regexp.MustCompile(`^@[A-Za-z0-9_]{1,32}$`)

// linkPrefixes are stripped from operator input so a pasted invite link works too
var linkPrefixes = []string{"https://t.me/", "http://t.me/", "t.me/"}

// Channel is a required-subscription target
type Channel struct {
	Handle string
}

// URL returns the public link of the channel
func (c Channel) URL() string {
	return "https://t.me/" + strings.TrimPrefix(c.Handle, MentionPrefix)
}

// NormalizeHandle turns operator input into the stored handle form.
// It returns ErrInvalidInput if the result is not a valid public handle.
func NormalizeHandle(input string) (string, error) {
	handle := strings.TrimSpace(input)
	for _, prefix := range linkPrefixes {
		if strings.HasPrefix(handle, prefix) {
			handle = strings.TrimPrefix(handle, prefix)
			break
		}
	}
	handle = strings.TrimSuffix(handle, "/")

	if handle == "" {
		return "", fmt.Errorf("%w: empty channel handle", ErrInvalidInput)
	}
	if !strings.HasPrefix(handle, MentionPrefix) {
		handle = MentionPrefix + handle
	}
	if !handlePattern.MatchString(handle) {
		return "", fmt.Errorf("%w: bad channel handle %q", ErrInvalidInput, input)
	}
	return handle, nil
}
