package controller_test

import (
	"context"
	"sort"
	"strings"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// memStore is an in-memory Store[models.Category] with the same observable
// semantics as the gorm-backed store: assigned ids, case-insensitive name
// search, id-descending pages with a total count, full-record updates that
// keep the id, and soft deletes that hide the row from every read.
type memStore struct {
	seq     uint
	rows    map[uint]models.Category
	deleted map[uint]bool
}

func newMemStore() *memStore {
	return &memStore{rows: map[uint]models.Category{}, deleted: map[uint]bool{}}
}

func (m *memStore) FindOne(ctx context.Context, id uint) (*models.Category, error) {
	row, ok := m.rows[id]
	if !ok || m.deleted[id] {
		return nil, storage.ErrNotFound
	}
	return &row, nil
}

func (m *memStore) FindPage(ctx context.Context, filter models.Filter) (*models.Page[models.Category], error) {
	filter = filter.Normalized()

	var matched []models.Category
	for id, row := range m.rows {
		if m.deleted[id] {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(row.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	offset := filter.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return &models.Page[models.Category]{
		Items:   matched[offset:end],
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.Limit,
	}, nil
}

func (m *memStore) Create(ctx context.Context, entity *models.Category) error {
	m.seq++
	entity.ID = m.seq
	m.rows[entity.ID] = *entity
	return nil
}

func (m *memStore) Update(ctx context.Context, id uint, entity *models.Category) (*models.Category, error) {
	if _, err := m.FindOne(ctx, id); err != nil {
		return nil, err
	}
	updated := *entity
	updated.ID = id
	m.rows[id] = updated
	return &updated, nil
}

func (m *memStore) Delete(ctx context.Context, id uint) (*models.Category, error) {
	prior, err := m.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	m.deleted[id] = true
	return prior, nil
}
