package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"breaking_news/internal/domain"
)

type UserStore interface {
	// ListActive returns up to limit non-disabled users with id > afterID,
	// ordered by id ascending.
	ListActive(ctx context.Context, afterID string, limit int) ([]domain.User, error)
}

type ArticleStore interface {
	// FindNextUnread returns the earliest published priority article the
	// user has not received yet, or nil when there is none.
	FindNextUnread(ctx context.Context, user domain.User) (*domain.Article, error)
	AddReceivedBy(ctx context.Context, articleID, userID string) error
}

type QueueStore interface {
	Insert(ctx context.Context, item *domain.QueuedItem) error
	ListOldest(ctx context.Context, limit int) ([]domain.QueuedItem, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

type RunStateStore interface {
	Get(ctx context.Context, pipeline string) (*domain.RunState, error)
	Update(ctx context.Context, state *domain.RunState) error
}

type Sender interface {
	Send(ctx context.Context, user domain.User, msg domain.OutgoingMessage) error
}

type Drainer interface {
	Drain(ctx context.Context) (domain.DrainStats, error)
}

type QueueBuilder interface {
	BuildQueue(ctx context.Context) (int, error)
}

// Observer receives pipeline events. metrics.Metrics implements it.
type Observer interface {
	Enqueued()
	MessageSent(t domain.MessageType)
	SendFailed()
	ReceivedMarked(n int)
	Drained(n int)
}

type nopObserver struct{}

func (nopObserver) Enqueued() {}
func (nopObserver) MessageSent(domain.MessageType) {}
func (nopObserver) SendFailed() {}
func (nopObserver) ReceivedMarked(int) {}
func (nopObserver) Drained(int) {}
