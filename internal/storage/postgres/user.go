package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"breaking_news/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

type userRow struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Locale    string    `db:"locale"`
	Disabled  bool      `db:"disabled"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID: r.ID,
		Profile: domain.UserProfile{
			CreatedAt: r.CreatedAt,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Locale:    r.Locale,
		},
		Disabled: r.Disabled,
	}
}

// ListActive pages through enabled users by id. Passing the last id of the
// previous page as afterID keeps the walk stable while users are added or
// disabled.
func (s *UserStore) ListActive(ctx context.Context, afterID string, limit int) ([]domain.User, error) {
	query := `
		SELECT id, created_at, first_name, last_name, locale, disabled
		FROM users
		WHERE disabled = FALSE AND id > $1
		ORDER BY id ASC
		LIMIT $2`

	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, query, afterID, limit); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, r := range rows {
		users[i] = r.toDomain()
	}
	return users, nil
}

// Upsert writes a user as the user service would. Used by tests and fixtures.
func (s *UserStore) Upsert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, created_at, first_name, last_name, locale, disabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			created_at = EXCLUDED.created_at,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			locale = EXCLUDED.locale,
			disabled = EXCLUDED.disabled`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Profile.CreatedAt,
		user.Profile.FirstName,
		user.Profile.LastName,
		user.Profile.Locale,
		user.Disabled,
	)
	return err
}
