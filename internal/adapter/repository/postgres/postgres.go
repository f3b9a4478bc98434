package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const (
	uniqueViolationErrCode = "23505"
	defaultQueryTimeout    = 5 * time.Second
)

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
}

type urlDB struct {
	ID          string    `db:"id"`
	OriginalURL string    `db:"original_url"`
	CreatedAt   time.Time `db:"created_at"`
	VisitCount  int64     `db:"visit_count"`
}

func (u *urlDB) toEntity() *entity.URL {
	return &entity.URL{
		Code:        u.ID,
		OriginalURL: u.OriginalURL,
		CreatedAt:   u.CreatedAt,
		VisitCount:  u.VisitCount,
	}
}

type Option func(*URLRepository)

// WithQueryTimeout bounds how long a single statement may run once started.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *URLRepository) {
		if d > 0 {
			r.queryTimeout = d
		}
	}
}

// URLRepository stores short code mappings in the urls table.
// Every method issues exactly one statement, so each call is atomic on its own.
type URLRepository struct {
	db           *sqlx.DB
	queryTimeout time.Duration
}

func NewURLRepository(db *sqlx.DB, opts ...Option) *URLRepository {
	r := &URLRepository{
		db:           db,
		queryTimeout: defaultQueryTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// statementContext keeps request values but drops the caller's cancellation:
// a statement already sent to the server finishes or fails as a whole.
func (r *URLRepository) statementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), r.queryTimeout)
}

func (r *URLRepository) Save(ctx context.Context, code, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(id, original_url) VALUES ($1, $2)
		RETURNING id, original_url, created_at, visit_count`

	ctx, cancel := r.statementContext(ctx)
	defer cancel()

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, code, originalURL); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) RetrieveByCode(ctx context.Context, code string) (*entity.URL, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveByCode"
	const query = `SELECT id, original_url, created_at, visit_count FROM urls WHERE id = $1`

	ctx, cancel := r.statementContext(ctx)
	defer cancel()

	var url urlDB

	if err := r.db.GetContext(ctx, &url, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

// RetrieveAndCountVisit increments the visit counter and returns the original URL
// in one statement, so concurrent visits of the same code are never lost.
func (r *URLRepository) RetrieveAndCountVisit(ctx context.Context, code string) (string, error) {
	const op = "adapter.repository.postgres.URLRepository.RetrieveAndCountVisit"
	const query = `UPDATE urls SET visit_count = visit_count + 1 WHERE id = $1 RETURNING original_url`

	ctx, cancel := r.statementContext(ctx)
	defer cancel()

	var originalURL string

	if err := r.db.GetContext(ctx, &originalURL, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
		}

		return "", fmt.Errorf("%s: failed to get and update urls table row: %w", op, err)
	}

	return originalURL, nil
}
