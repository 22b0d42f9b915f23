package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/stretchr/testify/mock"

	"complaintdesk/backend/internal/models"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) FindOne(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) FindPage(ctx context.Context, filter models.Filter) (*models.Page[models.Category], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.Category]), args.Error(1)
}

func (m *mockCategoryStore) Create(ctx context.Context, entity *models.Category) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockCategoryStore) Update(ctx context.Context, id uint, entity *models.Category) (*models.Category, error) {
	args := m.Called(ctx, id, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) Delete(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindOne(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) FindPage(ctx context.Context, filter models.Filter) (*models.Page[models.User], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.User]), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, entity *models.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockUserStore) Update(ctx context.Context, id uint, entity *models.User) (*models.User, error) {
	args := m.Called(ctx, id, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) Delete(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// fakeSessions is an in-memory SessionStore for middleware tests.
type fakeSessions struct {
	byID map[string]uint
	next int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[string]uint{}}
}

func (f *fakeSessions) Create(ctx context.Context, userID uint) (string, error) {
	f.next++
	sid := fmt.Sprintf("sid-%d", f.next)
	f.byID[sid] = userID
	return sid, nil
}

func (f *fakeSessions) UserID(ctx context.Context, sid string) (uint, error) {
	id, ok := f.byID[sid]
	if !ok {
		return 0, errors.New("session not found")
	}
	return id, nil
}

func (f *fakeSessions) Delete(ctx context.Context, sid string) error {
	delete(f.byID, sid)
	return nil
}
