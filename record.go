package inkpress

import (
	"strings"
	"time"
)

// AnonymousAuthor is the author recorded when neither the draft nor the
// session carries a display name.
const AnonymousAuthor = "Anonymous"

// NewRecord converts a validated draft into the payload for a create call.
// Title and description are trimmed, a blank author falls back to the
// session's display name (then to AnonymousAuthor), and both timestamps are
// stamped to now. The image is stored exactly as the normalizer produced it.
// The draft itself is never mutated.
func NewRecord(d Draft, image, sessionName string) Post {
	now := time.Now().UTC().Format(time.RFC3339)
	return Post{
		Title:       strings.TrimSpace(d.Title),
		Author:      recordAuthor(d.Author, sessionName),
		Description: strings.TrimSpace(d.Description),
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateRecord builds the full-replace payload for an update call. The id
// and CreatedAt of the existing record are preserved; UpdatedAt is restamped.
func UpdateRecord(existing Post, d Draft, image, sessionName string) Post {
	p := NewRecord(d, image, sessionName)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return p
}

func recordAuthor(author, sessionName string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	if sessionName != "" {
		return sessionName
	}
	return AnonymousAuthor
}
