// Package mocks provides testify mocks for the link use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLinkUseCase is a mock implementation of LinkUseCase for testing.
type MockLinkUseCase struct {
	mock.Mock
}

// NewMockLinkUseCase creates a MockLinkUseCase whose expectations are asserted on cleanup.
func NewMockLinkUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkUseCase {
	m := &MockLinkUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GenerateAndPersist mocks the GenerateAndPersist method of LinkUseCase.
func (m *MockLinkUseCase) GenerateAndPersist(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// SetManual mocks the SetManual method of LinkUseCase.
func (m *MockLinkUseCase) SetManual(ctx context.Context, pushID, audience string) error {
	args := m.Called(ctx, pushID, audience)
	return args.Error(0)
}

// Load mocks the Load method of LinkUseCase.
func (m *MockLinkUseCase) Load(ctx context.Context) (string, bool) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1)
}

// Ensure mocks the Ensure method of LinkUseCase.
func (m *MockLinkUseCase) Ensure(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}
