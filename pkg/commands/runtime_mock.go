package commands

import (
	"context"
	"errors"

	"github.com/docker/docker/api/types/image"
)

// ErrMockNotImplemented is returned when a mock function is not set.
var ErrMockNotImplemented = errors.New("mock function not implemented")

// MockRuntime implements ImageRuntime for testing purposes. Each method can be
// customized by setting the corresponding function field; a method whose
// function is not set returns ErrMockNotImplemented.
type MockRuntime struct {
	ListImagesFunc  func(ctx context.Context) ([]image.Summary, error)
	RemoveImageFunc func(ctx context.Context, id string, force bool) ([]image.DeleteResponse, error)
	CloseFunc       func() error

	// RemovedIDs records every RemoveImage call in order, for assertions on
	// deletion ordering
	RemovedIDs []string
}

// ListImages calls ListImagesFunc
func (m *MockRuntime) ListImages(ctx context.Context) ([]image.Summary, error) {
	if m.ListImagesFunc == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListImagesFunc(ctx)
}

// RemoveImage records the call and then calls RemoveImageFunc
func (m *MockRuntime) RemoveImage(ctx context.Context, id string, force bool) ([]image.DeleteResponse, error) {
	m.RemovedIDs = append(m.RemovedIDs, id)
	if m.RemoveImageFunc == nil {
		return nil, ErrMockNotImplemented
	}
	return m.RemoveImageFunc(ctx, id, force)
}

// Close calls CloseFunc
func (m *MockRuntime) Close() error {
	if m.CloseFunc == nil {
		return nil
	}
	return m.CloseFunc()
}
