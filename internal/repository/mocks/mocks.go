package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// KV is a mock for repository.KV.
type KV struct {
	mock.Mock
}

func (m *KV) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *KV) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
