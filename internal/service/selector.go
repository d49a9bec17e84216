package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"breaking_news/internal/config"
	"breaking_news/internal/domain"
)

// Selector walks every active user and queues the earliest priority article
// each of them has not received yet.
type Selector struct {
	users    UserStore
	articles ArticleStore
	queue    QueueStore
	observer Observer
	logger   *slog.Logger
	config   config.PipelineConfig

	newID func() string
	now   func() time.Time
}

func NewSelector(
	users UserStore,
	articles ArticleStore,
	queue QueueStore,
	observer Observer,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Selector {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Selector{
		users:    users,
		articles: articles,
		queue:    queue,
		observer: observer,
		logger:   logger.With("component", "selector"),
		config:   cfg,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

// BuildQueue scans users page by page and returns the number of obligations
// written to the queue.
func (s *Selector) BuildQueue(ctx context.Context) (int, error) {
	var (
		cursor   string
		enqueued int
		page     int
	)

	for {
		users, err := s.users.ListActive(ctx, cursor, s.config.UserPageSize)
		if err != nil {
			return enqueued, fmt.Errorf("list users after %q: %w", cursor, err)
		}
		if len(users) == 0 {
			break
		}

		n, err := s.processPage(ctx, users)
		enqueued += n
		if err != nil {
			return enqueued, err
		}

		page++
		cursor = users[len(users)-1].ID

		s.logger.Debug("user page processed",
			"page", page,
			"users", len(users),
			"enqueued", n,
			"cursor", cursor,
		)

		if err := pause(ctx, s.config.PageDelay); err != nil {
			return enqueued, err
		}
	}

	s.logger.Info("queue built", "pages", page, "enqueued", enqueued)

	return enqueued, nil
}

// processPage looks users up one at a time to keep load on the store flat.
func (s *Selector) processPage(ctx context.Context, users []domain.User) (int, error) {
	enqueued := 0
	for _, user := range users {
		article, err := s.articles.FindNextUnread(ctx, user)
		if err != nil {
			return enqueued, fmt.Errorf("find article for user %s: %w", user.ID, err)
		}
		if article == nil {
			continue
		}

		item := &domain.QueuedItem{
			ID:        s.newID(),
			User:      user,
			Article:   *article,
			CreatedAt: s.now().UTC(),
		}
		if err := s.queue.Insert(ctx, item); err != nil {
			return enqueued, fmt.Errorf("queue article %s for user %s: %w", article.ID, user.ID, err)
		}

		enqueued++
		s.observer.Enqueued()
	}
	return enqueued, nil
}
