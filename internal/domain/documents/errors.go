package documents

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrCategoryNotFound = errors.New("document category not found")
)
