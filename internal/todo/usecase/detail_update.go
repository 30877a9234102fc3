package usecase

import (
	"context"
	"fmt"

	"todo-web/internal/model"
	"todo-web/internal/todo"
	repo "todo-web/internal/todo/repository"
)

// Detail reads one list. Returns ErrListNotFound when the file does not exist.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, filename string) (todo.DetailOutput, error) {
	if err := todo.ValidateFilename(filename); err != nil {
		return todo.DetailOutput{}, err
	}

	items, err := uc.repo.ReadList(ctx, filename)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Detail ReadList %s: %v", filename, err)
		return todo.DetailOutput{}, err
	}

	return todo.DetailOutput{
		Filename: filename,
		Items:    items,
		Stats:    todo.NewStats(items),
	}, nil
}

// UpdateItem sets items[Index].Done and rewrites the list. The whole
// read-modify-write runs under the list's lock.
func (uc *implUseCase) UpdateItem(ctx context.Context, sc model.Scope, input todo.UpdateItemInput) (todo.UpdateItemOutput, error) {
	if err := todo.ValidateFilename(input.Filename); err != nil {
		return todo.UpdateItemOutput{}, err
	}

	unlock := uc.locks.lock(input.Filename)
	defer unlock()

	items, err := uc.repo.ReadList(ctx, input.Filename)
	if err != nil {
		uc.l.Warnf(ctx, "uc.UpdateItem ReadList %s: %v", input.Filename, err)
		return todo.UpdateItemOutput{}, err
	}

	if input.Index < 0 || input.Index >= len(items) {
		uc.l.Warnf(ctx, "uc.UpdateItem: index %d out of range for %s (%d items)", input.Index, input.Filename, len(items))
		return todo.UpdateItemOutput{}, fmt.Errorf("%w: index %d, list has %d items",
			todo.ErrItemIndexOutOfRange, input.Index, len(items))
	}

	items[input.Index].Done = input.Done

	if err := uc.repo.WriteList(ctx, repo.WriteListOptions{
		Filename: input.Filename,
		Items:    items,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem WriteList %s: %v", input.Filename, err)
		return todo.UpdateItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.UpdateItem: user=%s file=%s index=%d done=%t",
		sc.Username, input.Filename, input.Index, input.Done)

	return todo.UpdateItemOutput{
		Filename: input.Filename,
		Index:    input.Index,
		Item:     items[input.Index],
	}, nil
}
