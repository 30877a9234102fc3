package jsonfile

import (
	"errors"

	"todo-web/pkg/log"
)

// implRepository stores each todo list as a JSON array file inside dir.
type implRepository struct {
	dir string
	l   log.Logger
}

// New creates a JSON file repository rooted at dir.
func New(dir string, l log.Logger) (*implRepository, error) {
	if dir == "" {
		return nil, errors.New("todo directory is required")
	}
	return &implRepository{
		dir: dir,
		l:   l,
	}, nil
}
