package directory

import "errors"

var (
	ErrEmployeeNotFound = errors.New("directory: employee not found")
	ErrNegativeSalary   = errors.New("directory: salary must not be negative")
)
