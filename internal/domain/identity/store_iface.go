package identity

import "context"

type Store interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (*Employee, error)
	GetByUsername(ctx context.Context, username string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, emp Employee) (*Employee, error)
	Update(ctx context.Context, id int, update EmployeeUpdate) (*Employee, error)
}
