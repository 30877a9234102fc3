package repository

import "todo-web/internal/todo"

// WriteListOptions holds parameters for replacing a list file.
type WriteListOptions struct {
	Filename string
	Items    []todo.Item
}
