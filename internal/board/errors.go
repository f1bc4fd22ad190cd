package board

import "errors"

var (
	// ErrTaskNotFound is returned when an operation names a task the board does not hold.
	ErrTaskNotFound = errors.New("task not found")
	// ErrColumnNotFound is returned when an operation names an unknown column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrSourceMismatch means the caller's source column does not hold the task.
	ErrSourceMismatch = errors.New("task is not in the source column")
	// ErrStatusMismatch means a new task's status names a different column than the one it is created in.
	ErrStatusMismatch = errors.New("task status does not match column")
	// ErrDuplicateTask is returned when creating a task whose identifier is taken.
	ErrDuplicateTask = errors.New("task already exists")
	// ErrInvalidTask wraps form validation failures.
	ErrInvalidTask = errors.New("invalid task")
)
