package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"breaking_news/internal/domain"
)

// QueueStore persists breaking news obligations. seq gives insertion order.
type QueueStore struct {
	db *sqlx.DB
}

func NewQueueStore(db *sqlx.DB) *QueueStore {
	return &QueueStore{db: db}
}

type queueRow struct {
	ID              string    `db:"id"`
	Seq             int64     `db:"seq"`
	UserSnapshot    []byte    `db:"user_snapshot"`
	ArticleSnapshot []byte    `db:"article_snapshot"`
	CreatedAt       time.Time `db:"created_at"`
}

func (s *QueueStore) Insert(ctx context.Context, item *domain.QueuedItem) error {
	userJSON, err := json.Marshal(item.User)
	if err != nil {
		return fmt.Errorf("marshal user snapshot: %w", err)
	}
	articleJSON, err := articleSnapshot(item.Article)
	if err != nil {
		return fmt.Errorf("marshal article snapshot: %w", err)
	}

	query := `
		INSERT INTO breaking_news_queued_items (
			id, user_id, article_id, user_snapshot, article_snapshot, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING seq`

	return s.db.QueryRowContext(ctx, query,
		item.ID,
		item.User.ID,
		item.Article.ID,
		userJSON,
		articleJSON,
		item.CreatedAt,
	).Scan(&item.Seq)
}

func (s *QueueStore) ListOldest(ctx context.Context, limit int) ([]domain.QueuedItem, error) {
	query := `
		SELECT id, seq, user_snapshot, article_snapshot, created_at
		FROM breaking_news_queued_items
		ORDER BY seq ASC
		LIMIT $1`

	var rows []queueRow
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}

	items := make([]domain.QueuedItem, len(rows))
	for i, r := range rows {
		items[i] = domain.QueuedItem{ID: r.ID, Seq: r.Seq, CreatedAt: r.CreatedAt}
		if err := json.Unmarshal(r.UserSnapshot, &items[i].User); err != nil {
			return nil, fmt.Errorf("decode user snapshot of %s: %w", r.ID, err)
		}
		if err := json.Unmarshal(r.ArticleSnapshot, &items[i].Article); err != nil {
			return nil, fmt.Errorf("decode article snapshot of %s: %w", r.ID, err)
		}
	}

	return items, nil
}

func (s *QueueStore) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM breaking_news_queued_items WHERE id = ANY($1::uuid[])",
		pq.Array(ids),
	)
	return err
}

func (s *QueueStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM breaking_news_queued_items")
	return n, err
}

// articleSnapshot encodes the article without its received-set, which grows
// with the user base and is never read back from the queue.
func articleSnapshot(a domain.Article) ([]byte, error) {
	a.ReceivedByUsers = nil
	return json.Marshal(a)
}
