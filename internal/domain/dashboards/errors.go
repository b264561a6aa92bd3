package dashboards

import "errors"

var ErrNotFound = errors.New("dashboard not found")
