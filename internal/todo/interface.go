package todo

import (
	"context"

	"oneday-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Durable store
	Load(ctx context.Context) []model.Todo
	Save(ctx context.Context, todos []model.Todo) error
	Reload(ctx context.Context) State

	// List mutations
	Add(ctx context.Context, rawText string) (AddOutput, error)
	Toggle(ctx context.Context, id string, completed bool) (MutationOutput, error)
	Delete(ctx context.Context, id string) (MutationOutput, error)
	UpdateText(ctx context.Context, id string, rawText string) (MutationOutput, error)
	ClearCompleted(ctx context.Context) (ClearOutput, error)

	// View state
	SetFilter(ctx context.Context, filter model.Filter) (State, error)
	State(ctx context.Context) State
	Subscribe() (<-chan State, func())

	// Editing protocol
	BeginEdit(ctx context.Context, id string) (MutationOutput, error)
	CommitEdit(ctx context.Context, id string, rawText string) (MutationOutput, error)
	CancelEdit(ctx context.Context, id string) (MutationOutput, error)
}
