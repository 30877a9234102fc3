package usecase

import (
	"context"

	"todo-web/internal/model"
	"todo-web/internal/todo"
)

// ListLists returns the filenames of all todo lists.
func (uc *implUseCase) ListLists(ctx context.Context, sc model.Scope) (todo.ListListsOutput, error) {
	files, err := uc.repo.ListFiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLists ListFiles: %v", err)
		return todo.ListListsOutput{}, err
	}
	return todo.ListListsOutput{Filenames: files}, nil
}
