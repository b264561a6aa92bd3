package onboarding

import "errors"

var (
	ErrStepNotFound   = errors.New("onboarding step not found")
	ErrRecordNotFound = errors.New("onboarding record not found")
	ErrStepRecorded   = errors.New("employee already has a record for this step")
)
