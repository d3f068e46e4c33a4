package mocks

import (
	"context"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/bnema/paladins-stats-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockSessionStore struct {
	mock.Mock
}

var _ ports.SessionStore = (*MockSessionStore)(nil)

func NewMockSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionStore {
	m := &MockSessionStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSessionStore) Load(ctx context.Context) (domain.StoredSession, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StoredSession), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session domain.StoredSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
