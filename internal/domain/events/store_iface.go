package events

import "context"

type Store interface {
	List(ctx context.Context) ([]Event, error)
	// ListByUser returns the same set as List: every employee sees the whole
	// company calendar.
	ListByUser(ctx context.Context, employeeID int) ([]Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	Create(ctx context.Context, event Event) (*Event, error)
}
