package controller_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"complaintdesk/backend/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindOne(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockStore) FindPage(ctx context.Context, filter models.Filter) (*models.Page[models.Category], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.Category]), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, entity *models.Category) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, id uint, entity *models.Category) (*models.Category, error) {
	args := m.Called(ctx, id, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// RecordingNotifier captures notifications so tests can assert the
// exactly-one-per-outcome rule.
type RecordingNotifier struct {
	Successes []string
	Errors    []string
}

func (n *RecordingNotifier) Success(title, message string) {
	n.Successes = append(n.Successes, title)
}

func (n *RecordingNotifier) Error(message string) {
	n.Errors = append(n.Errors, message)
}
