package driver

import (
	"context"

	"github.com/agenthands/orgchart/internal/core/model"
)

// RowSource yields the hierarchy rows from one backend.
type RowSource interface {
	FetchRows(ctx context.Context) ([]model.HierarchyRow, error)
	Close(ctx context.Context) error
}
