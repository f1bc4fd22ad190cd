package board

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"kanban/internal/models"
)

// End used as a move index places the task after the last card of the
// destination column.
const End = math.MaxInt

// Store owns the board and applies task operations to it. Every operation
// publishes a new snapshot; snapshots already handed out are never modified.
type Store struct {
	mu     sync.RWMutex
	board  models.Board
	logger *slog.Logger
	now    func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store seeded with initial. The seed must satisfy the board
// invariants; it is copied so later changes by the caller are not observed.
func New(initial models.Board, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := Check(initial); err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}

	s := &Store{
		board:  copyBoard(initial),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot returns the current board. The result must not be modified.
func (s *Store) Snapshot() models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Move relocates a task to index within toColumnID. The source column is
// taken from the board itself; fromColumnID may be empty, otherwise it must
// name the column currently holding the task. For a move inside one column
// the index refers to positions before the task is taken out.
func (s *Store) Move(taskID, fromColumnID, toColumnID string, index int) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.board
	task, ok := cur.Tasks[taskID]
	if !ok {
		return cur, fmt.Errorf("move %q: %w", taskID, ErrTaskNotFound)
	}
	to := cur.ColumnIndex(toColumnID)
	if to < 0 {
		return cur, fmt.Errorf("move %q to %q: %w", taskID, toColumnID, ErrColumnNotFound)
	}
	if fromColumnID != "" && cur.ColumnIndex(fromColumnID) < 0 {
		return cur, fmt.Errorf("move %q from %q: %w", taskID, fromColumnID, ErrColumnNotFound)
	}
	from := locate(cur, taskID)
	if from < 0 || (fromColumnID != "" && cur.Columns[from].ID != fromColumnID) {
		return cur, fmt.Errorf("move %q from %q: %w", taskID, fromColumnID, ErrSourceMismatch)
	}

	columns := append([]models.Column(nil), cur.Columns...)
	remaining, removedAt := removeID(columns[from].TaskIDs, taskID)
	columns[from].TaskIDs = remaining
	if from == to && removedAt < index {
		index--
	}
	columns[to].TaskIDs = insertAt(columns[to].TaskIDs, index, taskID)

	tasks := copyTasks(cur.Tasks)
	task.Status = toColumnID
	tasks[taskID] = task

	s.logger.Debug("task moved",
		slog.String("task", taskID),
		slog.String("from", columns[from].ID),
		slog.String("to", toColumnID),
		slog.Int("index", columns[to].IndexOf(taskID)))
	s.warnCapacity(columns[to])
	return s.publish(columns, tasks), nil
}

// Create adds task to the end of columnID. An empty status is filled in with
// columnID and a zero CreatedAt with the store clock.
func (s *Store) Create(columnID string, task models.Task) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.board
	idx := cur.ColumnIndex(columnID)
	if idx < 0 {
		return cur, fmt.Errorf("create in %q: %w", columnID, ErrColumnNotFound)
	}
	if task.ID == "" {
		return cur, fmt.Errorf("create: empty id: %w", ErrInvalidTask)
	}
	if strings.TrimSpace(task.Title) == "" {
		return cur, fmt.Errorf("create %q: title is required: %w", task.ID, ErrInvalidTask)
	}
	if task.Priority != "" && !task.Priority.Valid() {
		return cur, fmt.Errorf("create %q: unknown priority %q: %w", task.ID, task.Priority, ErrInvalidTask)
	}
	if _, exists := cur.Tasks[task.ID]; exists {
		return cur, fmt.Errorf("create %q: %w", task.ID, ErrDuplicateTask)
	}
	switch task.Status {
	case "":
		task.Status = columnID
	case columnID:
	default:
		return cur, fmt.Errorf("create %q: status %q in column %q: %w", task.ID, task.Status, columnID, ErrStatusMismatch)
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}

	columns := append([]models.Column(nil), cur.Columns...)
	columns[idx].TaskIDs = insertAt(columns[idx].TaskIDs, End, task.ID)

	tasks := copyTasks(cur.Tasks)
	tasks[task.ID] = task.Clone()

	s.logger.Debug("task created", slog.String("task", task.ID), slog.String("column", columnID))
	s.warnCapacity(columns[idx])
	return s.publish(columns, tasks), nil
}

// Update merges patch over the task. A status change moves the task to the
// end of the new column; a status naming no column is rejected.
func (s *Store) Update(taskID string, patch models.TaskPatch) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.board
	task, ok := cur.Tasks[taskID]
	if !ok {
		return cur, fmt.Errorf("update %q: %w", taskID, ErrTaskNotFound)
	}
	if err := ValidatePatch(patch); err != nil {
		return cur, fmt.Errorf("update %q: %w", taskID, err)
	}

	updated := patch.Apply(task)
	updated.ID = task.ID
	updated.CreatedAt = task.CreatedAt

	columns := cur.Columns
	if updated.Status != task.Status {
		dest := cur.ColumnIndex(updated.Status)
		if dest < 0 {
			return cur, fmt.Errorf("update %q: status %q: %w", taskID, updated.Status, ErrColumnNotFound)
		}
		columns = append([]models.Column(nil), cur.Columns...)
		for i := range columns {
			columns[i].TaskIDs = withoutAll(columns[i].TaskIDs, taskID)
		}
		columns[dest].TaskIDs = insertAt(columns[dest].TaskIDs, End, taskID)
		s.logger.Debug("task status changed",
			slog.String("task", taskID),
			slog.String("from", task.Status),
			slog.String("to", updated.Status))
		s.warnCapacity(columns[dest])
	}

	tasks := copyTasks(cur.Tasks)
	tasks[taskID] = updated

	s.logger.Debug("task updated", slog.String("task", taskID))
	return s.publish(columns, tasks), nil
}

// Delete removes the task from the board. Deleting an unknown task is a no-op.
func (s *Store) Delete(taskID string) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.board
	_, known := cur.Tasks[taskID]
	if !known && locate(cur, taskID) < 0 {
		return cur, nil
	}

	columns := append([]models.Column(nil), cur.Columns...)
	for i := range columns {
		columns[i].TaskIDs = withoutAll(columns[i].TaskIDs, taskID)
	}
	tasks := copyTasks(cur.Tasks)
	delete(tasks, taskID)

	s.logger.Debug("task deleted", slog.String("task", taskID))
	return s.publish(columns, tasks), nil
}

func (s *Store) publish(columns []models.Column, tasks map[string]models.Task) models.Board {
	s.board = models.Board{Columns: columns, Tasks: tasks}
	return s.board
}

func (s *Store) warnCapacity(col models.Column) {
	if col.MaxTasks > 0 && len(col.TaskIDs) > col.MaxTasks {
		s.logger.Warn("column over capacity",
			slog.String("column", col.ID),
			slog.Int("tasks", len(col.TaskIDs)),
			slog.Int("max", col.MaxTasks))
	}
}

// locate returns the index of the column holding taskID, or -1.
func locate(b models.Board, taskID string) int {
	for i, c := range b.Columns {
		if c.IndexOf(taskID) >= 0 {
			return i
		}
	}
	return -1
}

func copyTasks(tasks map[string]models.Task) map[string]models.Task {
	out := make(map[string]models.Task, len(tasks)+1)
	for id, t := range tasks {
		out[id] = t
	}
	return out
}

func copyBoard(b models.Board) models.Board {
	columns := make([]models.Column, len(b.Columns))
	for i, c := range b.Columns {
		c.TaskIDs = append([]string{}, c.TaskIDs...)
		columns[i] = c
	}
	tasks := make(map[string]models.Task, len(b.Tasks))
	for id, t := range b.Tasks {
		tasks[id] = t.Clone()
	}
	return models.Board{Columns: columns, Tasks: tasks}
}
