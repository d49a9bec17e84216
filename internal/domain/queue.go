package domain

import "time"

// QueuedItem is a durable obligation: User is owed a notification for
// Article. The snapshots are taken when the obligation is created.
type QueuedItem struct {
	ID        string
	Seq       int64
	User      User
	Article   Article
	CreatedAt time.Time
}
