package documents

import "context"

type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int) (*Category, error)
	Create(ctx context.Context, category Category) (*Category, error)
}

// Store holds document metadata. Access control and blob removal belong to
// the caller; Delete only drops the metadata row.
type Store interface {
	List(ctx context.Context) ([]Document, error)
	ListVisibleTo(ctx context.Context, employeeID int) ([]Document, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Document, error)
	GetByID(ctx context.Context, id int) (*Document, error)
	Create(ctx context.Context, doc Document) (*Document, error)
	Delete(ctx context.Context, id int) error
}
