package board

import (
	"errors"
	"fmt"
	"strings"

	"kanban/internal/models"
)

// ErrInconsistentBoard wraps every invariant violation reported by Check.
var ErrInconsistentBoard = errors.New("inconsistent board")

// Check verifies that columns and tasks agree with each other: column ids are
// unique, every listed id has a task, no id is listed twice, and each task
// sits in exactly the column named by its status. Tasks also need a title
// and, when set, a known priority.
func Check(b models.Board) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInconsistentBoard}, args...)...))
	}

	seenColumns := make(map[string]struct{}, len(b.Columns))
	residence := make(map[string]string)
	for _, col := range b.Columns {
		if col.ID == "" {
			fail("column with empty id")
		}
		if _, dup := seenColumns[col.ID]; dup {
			fail("duplicate column %q", col.ID)
		}
		seenColumns[col.ID] = struct{}{}

		for _, id := range col.TaskIDs {
			if other, ok := residence[id]; ok {
				if other == col.ID {
					fail("task %q listed twice in column %q", id, col.ID)
				} else {
					fail("task %q listed in columns %q and %q", id, other, col.ID)
				}
				continue
			}
			residence[id] = col.ID
			if _, ok := b.Tasks[id]; !ok {
				fail("column %q lists unknown task %q", col.ID, id)
			}
		}
	}

	for id, t := range b.Tasks {
		if t.ID != id {
			fail("task keyed %q has id %q", id, t.ID)
		}
		if strings.TrimSpace(t.Title) == "" {
			fail("task %q has an empty title", id)
		}
		if t.Priority != "" && !t.Priority.Valid() {
			fail("task %q has unknown priority %q", id, t.Priority)
		}
		col, ok := residence[id]
		if !ok {
			fail("task %q is in no column", id)
			continue
		}
		if t.Status != col {
			fail("task %q has status %q but sits in column %q", id, t.Status, col)
		}
	}
	return errors.Join(errs...)
}
