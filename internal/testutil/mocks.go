// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides test doubles for the mask store and executor ports.
package testutil

import (
	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/stretchr/testify/mock"
)

// MockMaskStore mocks the mask.Store port for testing.
type MockMaskStore struct {
	mock.Mock
}

// Load mocks reading the active mask.
func (m *MockMaskStore) Load() mask.Mask {
	args := m.Called()
	if value, ok := args.Get(0).(mask.Mask); ok {
		return value
	}

	return 0
}

// Commit mocks installing a mask.
func (m *MockMaskStore) Commit(value mask.Mask) {
	m.Called(value)
}

// MockExecutor mocks the domain.Executor port for testing.
type MockExecutor struct {
	mock.Mock
}

// Exec mocks replacing the process with a command.
func (m *MockExecutor) Exec(name string, argv []string, env []string) error {
	args := m.Called(name, argv, env)
	return args.Error(0)
}

// MemoryStore is an in-memory mask.Store that counts its calls.
type MemoryStore struct {
	Value   mask.Mask
	Loads   int
	Commits int
}

// NewMemoryStore creates a store holding value.
func NewMemoryStore(value mask.Mask) *MemoryStore {
	return &MemoryStore{Value: value}
}

// Load returns the stored mask.
func (s *MemoryStore) Load() mask.Mask {
	s.Loads++
	return s.Value
}

// Commit replaces the stored mask.
func (s *MemoryStore) Commit(value mask.Mask) {
	s.Commits++
	s.Value = value
}
