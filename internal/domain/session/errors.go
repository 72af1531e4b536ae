package session

import "errors"

var (
	ErrNotIdle       = errors.New("session: another action is already in progress")
	ErrNotEditing    = errors.New("session: no employee form is open")
	ErrNotProcessing = errors.New("session: no payroll run is open")
)
