package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ReactionType is the kind of reaction a user can leave on a post
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionLove    ReactionType = "love"
	ReactionDislike ReactionType = "dislike"
)

// Valid reports whether the reaction type is known
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionDislike:
		return true
	}
	return false
}

// Reaction is the wire shape of a single reaction entry
type Reaction struct {
	UserID string       `json:"userId"`
	Type   ReactionType `json:"type"`
}

// ReactionSet holds reactions keyed by user id, so one-reaction-per-user
// holds by construction. On the wire it is a plain list of entries.
type ReactionSet map[string]ReactionType

// MarshalJSON renders the set as the backend's list shape
func (rs ReactionSet) MarshalJSON() ([]byte, error) {
	list := make([]Reaction, 0, len(rs))
	for userID, typ := range rs {
		list = append(list, Reaction{UserID: userID, Type: typ})
	}
	return json.Marshal(list)
}

// UnmarshalJSON reads the backend's list shape; a later entry for the
// same user wins, which matches the server's upsert semantics.
func (rs *ReactionSet) UnmarshalJSON(data []byte) error {
	var list []Reaction
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decode reactions: %w", err)
	}
	set := make(ReactionSet, len(list))
	for _, r := range list {
		set[r.UserID] = r.Type
	}
	*rs = set
	return nil
}

// Count returns how many users reacted with the given type
func (rs ReactionSet) Count(t ReactionType) int {
	n := 0
	for _, typ := range rs {
		if typ == t {
			n++
		}
	}
	return n
}

// Comment is one entry in a post's ordered comment list
type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// BlogPost is a community feed entry
type BlogPost struct {
	ID             string      `json:"id"`
	AuthorID       string      `json:"authorId"`
	AuthorName     string      `json:"authorName"`
	AuthorRole     Role        `json:"authorRole"`
	AuthorPhotoURL string      `json:"authorPhotoUrl"`
	Content        string      `json:"content"`
	Timestamp      time.Time   `json:"timestamp"`
	Reactions      ReactionSet `json:"reactions"`
	Comments       []Comment   `json:"comments"`
}

// CanEdit reports whether the given user may edit or delete the post
func (p *BlogPost) CanEdit(userID string, role Role) bool {
	return role == RoleAdmin || p.AuthorID == userID
}
