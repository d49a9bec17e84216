package domain

import "time"

type Article struct {
	ID          string    `json:"id" db:"id"`
	FeedID      string    `json:"feedId" db:"feed_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	// IsPublished is nil when the feed never set the flag; only an explicit
	// false hides the article.
	IsPublished     *bool    `json:"isPublished,omitempty" db:"is_published"`
	IsPriority      bool     `json:"isPriority" db:"is_priority"`
	ReceivedByUsers []string `json:"receivedByUsers,omitempty" db:"-"`
}

// ReceivedBy reports whether userID is already in the received-set.
func (a *Article) ReceivedBy(userID string) bool {
	for _, id := range a.ReceivedByUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// EligibleFor mirrors the candidate filter used by the article store.
func (a *Article) EligibleFor(u *User) bool {
	if !a.IsPriority {
		return false
	}
	if a.IsPublished != nil && !*a.IsPublished {
		return false
	}
	if !a.PublishedAt.After(u.Profile.CreatedAt) {
		return false
	}
	return !a.ReceivedBy(u.ID)
}
