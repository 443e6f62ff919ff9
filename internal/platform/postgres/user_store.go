package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/domain"
	"github.com/schedulizer/schedulizer-api/internal/platform/logger"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// Unique index names from the users migration, used to tell a username
// collision from an email collision.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

const userColumns = "id, username, email, full_name, hashed_password, created_at, updated_at"

// UserStore implements store.UserRepository using plain columns rather than
// a JSONB document, keeping the password hash out of any serialized form.
type UserStore struct {
	db       *sql.DB
	sortable map[string]bool
	logger   *slog.Logger
	now      func() time.Time
}

// Ensure UserStore implements the full user storage surface.
var _ store.UserRepository = (*UserStore)(nil)

// NewUserStore creates a PostgreSQL-backed user store.
// If log is nil, the default logger is used.
func NewUserStore(db *sql.DB, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserStore{
		db: db,
		sortable: map[string]bool{
			"username":   true,
			"email":      true,
			"full_name":  true,
			"created_at": true,
		},
		logger: log.With(slog.String("component", "user_store")),
		now:    time.Now,
	}
}

// Create persists a new user. The user must already carry a hashed
// password; plaintext never reaches the store.
// Returns ErrUsernameExists or ErrEmailExists on uniqueness violations.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	query := `
		INSERT INTO users (id, username, email, full_name, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.HashedPassword, s.now().UTC())
	if err != nil {
		mapped := s.mapUniqueViolation(err)
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return mapped
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return nil
}

// GetByID retrieves a user by their unique ID.
// Returns ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return s.scanOne(ctx, query, id)
}

// GetByUsername retrieves a user by their unique username.
// Returns ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)
	return s.scanOne(ctx, query, username)
}

// GetAll retrieves every user in insertion order.
func (s *UserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at, id`, userColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectUsers(rows)
}

// Update merges the patch's set fields into the stored user and returns the
// updated record. Returns ErrUserNotFound, without mutating anything, if
// the ID does not exist.
func (s *UserStore) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.HashedPassword != nil {
		add("hashed_password", *patch.HashedPassword)
	}
	add("updated_at", s.now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users SET %s WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), userColumns)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("user not found for update", slog.String("user_id", id.String()))
			return nil, err
		}
		mapped := s.mapUniqueViolation(err)
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, mapped
	}

	log.Info("user updated successfully", slog.String("user_id", id.String()))
	return user, nil
}

// Delete removes a user and returns their ID as confirmation.
// Returns ErrUserNotFound if the user does not exist.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted uuid.UUID
	err := s.db.QueryRowContext(ctx, `DELETE FROM users WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found for delete", slog.String("user_id", id.String()))
			return uuid.Nil, store.ErrUserNotFound
		}
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return uuid.Nil, MapError(err)
	}

	log.Info("user deleted successfully", slog.String("user_id", id.String()))
	return deleted, nil
}

// Explore runs the exploration protocol over users. Same snapshot
// discipline as the document stores: count and page window share one
// repeatable-read transaction.
func (s *UserStore) Explore(
	ctx context.Context,
	req store.ExplorationRequest,
) (*store.ExplorationResult[domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Pagination.Validate(); err != nil {
		return nil, err
	}
	sortBy := req.Pagination.Sort.By
	if !s.sortable[sortBy] {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidSortField, sortBy)
	}

	where, args := searchPredicate([]string{"username", "email", "full_name"}, req.Query)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM users WHERE %s`, where)
	pageQuery := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE %s
		ORDER BY %s %s, created_at, id
		OFFSET $%d LIMIT $%d
	`, userColumns, where, sortBy, sortDirection(req.Pagination.Sort.Order),
		len(args)+1, len(args)+2)

	var (
		total int
		data  []domain.User
	)
	txOpts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := store.RunInTransaction(ctx, s.db, txOpts, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		total, data, err = countAndPageUsers(ctx, tx, countQuery, pageQuery, args, req.Pagination)
		return err
	})
	if err != nil {
		log.Error("failed to explore users",
			slog.String("error", err.Error()),
			slog.String("query", req.Query))
		return nil, err
	}

	return store.NewExplorationResult(req, total, data), nil
}

// countAndPageUsers executes the count and page queries against the same
// queryer, normally the exploration transaction.
func countAndPageUsers(
	ctx context.Context,
	q store.DBTX,
	countQuery, pageQuery string,
	args []any,
	page store.PaginationRequest,
) (int, []domain.User, error) {
	var total int
	if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, nil, MapError(err)
	}

	pageArgs := append(append([]any{}, args...), page.Offset(), page.Limit)
	rows, err := q.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		return 0, nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	data, err := collectUsers(rows)
	if err != nil {
		return 0, nil, err
	}
	return total, data, nil
}

func (s *UserStore) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("user not found")
			return nil, err
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, err
	}
	return user, nil
}

// mapUniqueViolation narrows a unique violation to the specific duplicate
// error for the constraint that fired, falling back to MapError.
func (s *UserStore) mapUniqueViolation(err error) error {
	switch {
	case IsUniqueViolation(err, usersUsernameConstraint):
		return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
	case IsUniqueViolation(err, usersEmailConstraint):
		return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
	default:
		return MapError(err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	out := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		out = append(out, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return out, nil
}
