package models

import (
	"strings"
	"time"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists the supported priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Rank returns the position of p in Priorities, or -1 when unknown.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return -1
}

// Task represents a single card on the board.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string     `json:"status" yaml:"status"`
	Priority    Priority   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// Clone returns a copy of t that shares no slices or pointers with it.
func (t Task) Clone() Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// Overdue reports whether the task has a due date before now.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && now.After(*t.DueDate)
}

// Column is a workflow stage holding an ordered list of task identifiers.
type Column struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	TaskIDs  []string `json:"taskIds" yaml:"taskIds"`
	MaxTasks int      `json:"maxTasks,omitempty" yaml:"maxTasks,omitempty"`
}

// IndexOf returns the position of taskID in the column, or -1.
func (c Column) IndexOf(taskID string) int {
	for i, id := range c.TaskIDs {
		if id == taskID {
			return i
		}
	}
	return -1
}

// Board is a snapshot of the columns and the tasks they reference.
// Snapshots handed out by the board store must be treated as read-only.
type Board struct {
	Columns []Column        `json:"columns"`
	Tasks   map[string]Task `json:"tasks"`
}

// Column looks up a column by identifier.
func (b Board) Column(id string) (Column, bool) {
	if i := b.ColumnIndex(id); i >= 0 {
		return b.Columns[i], true
	}
	return Column{}, false
}

// ColumnIndex returns the position of column id, or -1.
func (b Board) ColumnIndex(id string) int {
	for i, c := range b.Columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Task looks up a task by identifier.
func (b Board) Task(id string) (Task, bool) {
	t, ok := b.Tasks[id]
	return t, ok
}

// ColumnTasks resolves the column's identifiers to task records in display
// order. Identifiers without a task record are skipped.
func (b Board) ColumnTasks(columnID string) []Task {
	col, ok := b.Column(columnID)
	if !ok {
		return nil
	}
	tasks := make([]Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if t, ok := b.Tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// TaskDraft carries the fields of the task edit form.
type TaskDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Assignee    string     `json:"assignee"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskPatch is a field-level partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *Priority
	Assignee     *string
	Tags         *[]string
	DueDate      *time.Time
	ClearDueDate bool
}

// SetTitle replaces the title.
func (p TaskPatch) SetTitle(title string) TaskPatch {
	p.Title = &title
	return p
}

// SetDescription replaces the description.
func (p TaskPatch) SetDescription(description string) TaskPatch {
	p.Description = &description
	return p
}

// SetStatus moves the task to the end of another column.
func (p TaskPatch) SetStatus(status string) TaskPatch {
	p.Status = &status
	return p
}

// SetPriority replaces the priority.
func (p TaskPatch) SetPriority(priority Priority) TaskPatch {
	p.Priority = &priority
	return p
}

// SetAssignee replaces the assignee.
func (p TaskPatch) SetAssignee(assignee string) TaskPatch {
	p.Assignee = &assignee
	return p
}

// SetTags replaces the tag list.
func (p TaskPatch) SetTags(tags []string) TaskPatch {
	cp := append([]string{}, tags...)
	p.Tags = &cp
	return p
}

// SetDueDate replaces the due date.
func (p TaskPatch) SetDueDate(due time.Time) TaskPatch {
	p.DueDate = &due
	p.ClearDueDate = false
	return p
}

// RemoveDueDate clears the due date.
func (p TaskPatch) RemoveDueDate() TaskPatch {
	p.DueDate = nil
	p.ClearDueDate = true
	return p
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil &&
		p.Assignee == nil && p.Tags == nil && p.DueDate == nil && !p.ClearDueDate
}

// Apply returns t with the patch fields merged over it.
func (p TaskPatch) Apply(t Task) Task {
	t = t.Clone()
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	return t
}
