package usecase

import (
	"context"
	"sync"

	"todo-web/internal/todo"
	"todo-web/internal/todo/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu       sync.Mutex
	lists    map[string][]todo.Item
	listErr  error
	readErr  error
	writeErr error
	writes   int
}

var _ repository.Repository = (*mockRepo)(nil)

func newMockRepo(lists map[string][]todo.Item) *mockRepo {
	if lists == nil {
		lists = map[string][]todo.Item{}
	}
	return &mockRepo{lists: lists}
}

func (m *mockRepo) ListFiles(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	files := make([]string, 0, len(m.lists))
	for name := range m.lists {
		files = append(files, name)
	}
	return files, nil
}

func (m *mockRepo) ReadList(ctx context.Context, filename string) ([]todo.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	items, ok := m.lists[filename]
	if !ok {
		return nil, todo.ErrListNotFound
	}
	return append([]todo.Item(nil), items...), nil
}

func (m *mockRepo) WriteList(ctx context.Context, opt repository.WriteListOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.lists[opt.Filename] = append([]todo.Item(nil), opt.Items...)
	return nil
}
