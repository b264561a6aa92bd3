package dashboards

import "context"

type Store interface {
	ListByEmployee(ctx context.Context, employeeID int) ([]Dashboard, error)
	GetByID(ctx context.Context, id int) (*Dashboard, error)
	GetDefault(ctx context.Context, employeeID int) (*Dashboard, error)
	Create(ctx context.Context, dashboard Dashboard) (*Dashboard, error)
	Update(ctx context.Context, id int, update DashboardUpdate) (*Dashboard, error)
	Delete(ctx context.Context, id int) error
}
