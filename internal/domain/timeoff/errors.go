package timeoff

import "errors"

var (
	ErrNotFound      = errors.New("time-off balance not found")
	ErrBalanceExists = errors.New("employee already has a time-off balance")
)
