package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"breaking_news/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	domain.Article
	ReceivedBy pq.StringArray `db:"received_by_users"`
}

func (r *articleRow) toDomain() *domain.Article {
	a := r.Article
	a.ReceivedByUsers = []string(r.ReceivedBy)
	return &a
}

// FindNextUnread returns the earliest priority article published after the
// user signed up that the user has not received yet. A NULL is_published
// counts as published. The received-set is filtered on in SQL and not
// loaded, so ReceivedByUsers is always empty.
func (s *ArticleStore) FindNextUnread(ctx context.Context, user domain.User) (*domain.Article, error) {
	query := `
		SELECT id, feed_id, title, description, image_url, published_at,
			is_published, is_priority
		FROM articles
		WHERE is_priority = TRUE
			AND is_published IS DISTINCT FROM FALSE
			AND published_at > $2
			AND NOT ($1 = ANY(received_by_users))
		ORDER BY published_at ASC, id ASC
		LIMIT 1`

	var row articleRow
	err := s.db.GetContext(ctx, &row, query, user.ID, user.Profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

// AddReceivedBy adds userID to the article's received-set. Adding a user
// that is already present is a no-op.
func (s *ArticleStore) AddReceivedBy(ctx context.Context, articleID, userID string) error {
	query := `
		UPDATE articles
		SET received_by_users = array_append(received_by_users, $2::text)
		WHERE id = $1 AND NOT ($2::text = ANY(received_by_users))`

	_, err := s.db.ExecContext(ctx, query, articleID, userID)
	return err
}

// Upsert writes an article as the content service would. The pipeline never
// calls it; it seeds tests and local fixtures.
func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (
			id, feed_id, title, description, image_url, published_at,
			is_published, is_priority
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			feed_id = EXCLUDED.feed_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			published_at = EXCLUDED.published_at,
			is_published = EXCLUDED.is_published,
			is_priority = EXCLUDED.is_priority`

	_, err := s.db.ExecContext(ctx, query,
		article.ID,
		article.FeedID,
		article.Title,
		article.Description,
		article.ImageURL,
		article.PublishedAt,
		article.IsPublished,
		article.IsPriority,
	)
	return err
}

func (s *ArticleStore) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	query := `
		SELECT id, feed_id, title, description, image_url, published_at,
			is_published, is_priority, received_by_users
		FROM articles
		WHERE id = $1`

	var row articleRow
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}
