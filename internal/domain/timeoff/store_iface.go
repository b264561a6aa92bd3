package timeoff

import "context"

type Store interface {
	GetByEmployee(ctx context.Context, employeeID int) (*Balance, error)
	Create(ctx context.Context, balance Balance) (*Balance, error)
	Update(ctx context.Context, employeeID int, update BalanceUpdate) (*Balance, error)
}
