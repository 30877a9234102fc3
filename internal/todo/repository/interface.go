package repository

import (
	"context"

	"todo-web/internal/todo"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	ListRepository
}

// ListRepository defines all data access methods for todo list files.
type ListRepository interface {
	ListFiles(ctx context.Context) ([]string, error)
	ReadList(ctx context.Context, filename string) ([]todo.Item, error)
	WriteList(ctx context.Context, opt WriteListOptions) error
}
