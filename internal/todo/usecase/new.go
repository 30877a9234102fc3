package usecase

import (
	"todo-web/internal/todo/repository"
	"todo-web/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	locks *fileLocks
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		locks: newFileLocks(),
	}
}
