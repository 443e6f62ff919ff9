package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schedulizer/schedulizer-api/internal/platform/logger"
	"github.com/schedulizer/schedulizer-api/internal/store"
)

// ResourceStoreConfig describes one document collection: its table, the
// error to surface when a document is absent, and the fields exploration
// may search and sort on.
type ResourceStoreConfig struct {
	// Table is the backing table name. Must be a compile-time constant of
	// the calling store, never user input: it is interpolated into SQL.
	Table string

	// Entity names the resource in errors and logs (e.g. "schedule").
	Entity string

	// NotFound is returned when a requested document is absent. It must
	// wrap store.ErrNotFound.
	NotFound error

	// Searchable lists the document fields OR-matched by free-text
	// exploration queries.
	Searchable []string

	// Sortable lists the document fields exploration may sort by.
	// "created_at" additionally sorts on the column, preserving insertion
	// order exactly.
	Sortable []string
}

// ResourceStore is a generic document store over a JSONB table of the shape
// (id UUID, doc JSONB, created_at, updated_at). It implements
// store.Repository[T, P] and store.Explorer[T] for any resource type whose
// JSON form round-trips through its doc column.
type ResourceStore[T store.Entity, P any] struct {
	db       *sql.DB
	cfg      ResourceStoreConfig
	sortable map[string]bool
	logger   *slog.Logger
	now      func() time.Time
}

// NewResourceStore creates a document store for one resource type.
// If log is nil, the default logger is used.
func NewResourceStore[T store.Entity, P any](
	db *sql.DB,
	cfg ResourceStoreConfig,
	log *slog.Logger,
) *ResourceStore[T, P] {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	sortable := make(map[string]bool, len(cfg.Sortable))
	for _, f := range cfg.Sortable {
		sortable[f] = true
	}

	return &ResourceStore[T, P]{
		db:       db,
		cfg:      cfg,
		sortable: sortable,
		logger:   log.With(slog.String("component", cfg.Entity+"_store")),
		now:      time.Now,
	}
}

// Create persists a new document. The entity's ID must already be set by
// its domain constructor.
func (s *ResourceStore[T, P]) Create(ctx context.Context, entity *T) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id := (*entity).EntityID()
	doc, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, created_at, updated_at)
		VALUES ($1, $2::jsonb, $3, $3)
	`, s.cfg.Table)

	if _, err := s.db.ExecContext(ctx, query, id, doc, s.now().UTC()); err != nil {
		mapped := MapError(err)
		log.Error("failed to create "+s.cfg.Entity,
			slog.String("error", err.Error()),
			slog.String("id", id.String()))
		return mapped
	}

	log.Info(s.cfg.Entity+" created successfully",
		slog.String("id", id.String()))
	return nil
}

// GetByID retrieves a document by its unique ID.
func (s *ResourceStore[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.cfg.Table)

	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug(s.cfg.Entity+" not found", slog.String("id", id.String()))
			return nil, s.cfg.NotFound
		}
		log.Error("failed to get "+s.cfg.Entity,
			slog.String("error", err.Error()),
			slog.String("id", id.String()))
		return nil, MapError(err)
	}

	return s.decode(raw)
}

// GetAll retrieves every document in insertion order. Intended for small
// collections; user-facing listings go through Explore.
func (s *ResourceStore[T, P]) GetAll(ctx context.Context) ([]T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY created_at, id`, s.cfg.Table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list "+s.cfg.Entity+"s", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return s.collect(rows)
}

// Update merges the patch's set fields into the stored document and returns
// the updated record. The merge is a single atomic JSONB concatenation, so
// fields absent from the patch are untouched and concurrent updates never
// produce a torn document.
func (s *ResourceStore[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now().UTC()
	doc, err := patchDoc(patch, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET doc = doc || $2::jsonb, updated_at = $3
		WHERE id = $1
		RETURNING doc
	`, s.cfg.Table)

	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, id, doc, now).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug(s.cfg.Entity+" not found for update", slog.String("id", id.String()))
			return nil, s.cfg.NotFound
		}
		log.Error("failed to update "+s.cfg.Entity,
			slog.String("error", err.Error()),
			slog.String("id", id.String()))
		return nil, MapError(err)
	}

	log.Info(s.cfg.Entity+" updated successfully", slog.String("id", id.String()))
	return s.decode(raw)
}

// Delete removes a document and returns its ID as confirmation.
func (s *ResourceStore[T, P]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING id`, s.cfg.Table)

	var deleted uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug(s.cfg.Entity+" not found for delete", slog.String("id", id.String()))
			return uuid.Nil, s.cfg.NotFound
		}
		log.Error("failed to delete "+s.cfg.Entity,
			slog.String("error", err.Error()),
			slog.String("id", id.String()))
		return uuid.Nil, MapError(err)
	}

	log.Info(s.cfg.Entity+" deleted successfully", slog.String("id", id.String()))
	return deleted, nil
}

// Explore runs the filter+sort+count+paginate protocol. Count and page
// window execute inside one repeatable-read transaction so both reflect the
// same snapshot of the collection; a page past the last one still reports
// the true total.
func (s *ResourceStore[T, P]) Explore(
	ctx context.Context,
	req store.ExplorationRequest,
) (*store.ExplorationResult[T], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Pagination.Validate(); err != nil {
		return nil, err
	}
	sortBy := req.Pagination.Sort.By
	if !s.sortable[sortBy] {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidSortField, sortBy)
	}

	exprs := make([]string, len(s.cfg.Searchable))
	for i, f := range s.cfg.Searchable {
		exprs[i] = fmt.Sprintf("doc->>'%s'", f)
	}
	where, args := searchPredicate(exprs, req.Query)

	orderExpr := fmt.Sprintf("doc->>'%s'", sortBy)
	if sortBy == "created_at" {
		orderExpr = "created_at"
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, s.cfg.Table, where)
	// Insertion order breaks ties so repeated explorations are stable.
	pageQuery := fmt.Sprintf(`
		SELECT doc FROM %s
		WHERE %s
		ORDER BY %s %s, created_at, id
		OFFSET $%d LIMIT $%d
	`, s.cfg.Table, where, orderExpr, sortDirection(req.Pagination.Sort.Order),
		len(args)+1, len(args)+2)

	var (
		total int
		data  []T
	)
	txOpts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := store.RunInTransaction(ctx, s.db, txOpts, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		total, data, err = s.countAndPage(ctx, tx, countQuery, pageQuery, args, req.Pagination)
		return err
	})
	if err != nil {
		log.Error("failed to explore "+s.cfg.Entity+"s",
			slog.String("error", err.Error()),
			slog.String("query", req.Query))
		return nil, err
	}

	log.Debug("explored "+s.cfg.Entity+"s",
		slog.String("query", req.Query),
		slog.Int("total", total),
		slog.Int("page", req.Pagination.Page))
	return store.NewExplorationResult(req, total, data), nil
}

// countAndPage executes the count and page queries against the same queryer,
// normally the exploration transaction.
func (s *ResourceStore[T, P]) countAndPage(
	ctx context.Context,
	q store.DBTX,
	countQuery, pageQuery string,
	args []any,
	page store.PaginationRequest,
) (int, []T, error) {
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

	data, err := s.collect(rows)
	if err != nil {
		return 0, nil, err
	}
	return total, data, nil
}

func (s *ResourceStore[T, P]) decode(raw []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: corrupt %s document: %v", store.ErrInvalidEntity, s.cfg.Entity, err)
	}
	return &out, nil
}

func (s *ResourceStore[T, P]) collect(rows *sql.Rows) ([]T, error) {
	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, MapError(err)
		}
		item, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return out, nil
}

// patchDoc renders a patch as the JSONB object to merge into the stored
// document: only the patch's set fields, never the identifier, plus the new
// updated_at.
func patchDoc(patch any, now time.Time) ([]byte, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	// The identifier is immutable once assigned.
	delete(fields, "id")
	fields["updated_at"] = now.Format(time.RFC3339Nano)
	return json.Marshal(fields)
}
