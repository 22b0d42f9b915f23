package storage

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"complaintdesk/backend/internal/models"
)

// Store exposes the five operations every resource screen depends on.
// One implementation lives here on gorm; rpcstore provides the same
// contract over the REST API for remote callers.
type Store[T any] interface {
	FindOne(ctx context.Context, id uint) (*T, error)
	FindPage(ctx context.Context, filter models.Filter) (*models.Page[T], error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, entity *T) (*T, error)
	Delete(ctx context.Context, id uint) (*T, error)
}

// EntityStore is the gorm-backed Store for one entity type. Search is a
// case-insensitive substring match over the configured columns; listing
// orders by id descending so the newest records surface first.
type EntityStore[T any] struct {
	db            *gorm.DB
	log           *zap.SugaredLogger
	searchColumns []string
}

func NewEntityStore[T any](db *gorm.DB, log *zap.SugaredLogger, searchColumns ...string) *EntityStore[T] {
	return &EntityStore[T]{db: db, log: log, searchColumns: searchColumns}
}

func (s *EntityStore[T]) FindOne(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return &entity, nil
}

func (s *EntityStore[T]) FindPage(ctx context.Context, filter models.Filter) (*models.Page[T], error) {
	filter = filter.Normalized()

	query := s.db.WithContext(ctx).Model(new(T))
	if filter.Search != "" && len(s.searchColumns) > 0 {
		clauses := make([]string, len(s.searchColumns))
		args := make([]interface{}, len(s.searchColumns))
		for i, col := range s.searchColumns {
			clauses[i] = fmt.Sprintf("%s ILIKE ?", col)
			args[i] = "%" + filter.Search + "%"
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.log.Errorw("count failed", "error", err)
		return nil, wrapDBError(err)
	}

	items := []T{}
	err := query.Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&items).Error
	if err != nil {
		s.log.Errorw("page query failed", "error", err)
		return nil, wrapDBError(err)
	}

	return &models.Page[T]{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.Limit,
	}, nil
}

func (s *EntityStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		s.log.Errorw("create failed", "error", err)
		return wrapDBError(err)
	}
	return nil
}

// Update replaces the mutable fields of an existing record. The id,
// creation timestamp and soft-delete marker are never touched.
func (s *EntityStore[T]) Update(ctx context.Context, id uint, entity *T) (*T, error) {
	existing, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(existing).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(entity).Error
	if err != nil {
		s.log.Errorw("update failed", "id", id, "error", err)
		return nil, wrapDBError(err)
	}

	return s.FindOne(ctx, id)
}

// Delete removes the record and returns its last state. The delete is
// terminal: subsequent reads yield ErrNotFound.
func (s *EntityStore[T]) Delete(ctx context.Context, id uint) (*T, error) {
	existing, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		s.log.Errorw("delete failed", "id", id, "error", err)
		return nil, wrapDBError(err)
	}
	return existing, nil
}
