package todo

import (
	"context"

	"todo-web/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// ListLists returns the filenames of every todo list in the todo directory.
	ListLists(ctx context.Context, sc model.Scope) (ListListsOutput, error)

	// Detail reads one list in file order.
	Detail(ctx context.Context, sc model.Scope, filename string) (DetailOutput, error)

	// UpdateItem sets the done flag of one item and writes the whole list back.
	UpdateItem(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
}
