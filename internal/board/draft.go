package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kanban/internal/models"
)

// DefaultPriority is preselected by the task form.
const DefaultPriority = models.PriorityMedium

// NewTaskID returns a fresh task identifier.
func NewTaskID() string {
	return "task-" + uuid.NewString()
}

// ValidateDraft checks a form submission before it reaches the store.
func ValidateDraft(d models.TaskDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidTask)
	}
	if d.Priority != "" && !d.Priority.Valid() {
		return fmt.Errorf("unknown priority %q: %w", d.Priority, ErrInvalidTask)
	}
	return nil
}

// NewTask turns a validated draft into a task for columnID, assigning a new
// identifier and creation time.
func NewTask(columnID string, d models.TaskDraft, now time.Time) (models.Task, error) {
	if err := ValidateDraft(d); err != nil {
		return models.Task{}, err
	}
	priority := d.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	t := models.Task{
		ID:          NewTaskID(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      columnID,
		Priority:    priority,
		Assignee:    strings.TrimSpace(d.Assignee),
		Tags:        CleanTags(d.Tags),
		CreatedAt:   now,
	}
	if d.DueDate != nil {
		due := *d.DueDate
		t.DueDate = &due
	}
	return t, nil
}

// ValidatePatch rejects edits the form would not allow.
func ValidatePatch(p models.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("title must not be empty: %w", ErrInvalidTask)
	}
	if p.Status != nil && *p.Status == "" {
		return fmt.Errorf("status must not be empty: %w", ErrInvalidTask)
	}
	if p.Priority != nil && *p.Priority != "" && !p.Priority.Valid() {
		return fmt.Errorf("unknown priority %q: %w", *p.Priority, ErrInvalidTask)
	}
	return nil
}

// AddTag appends tag to tags unless it is blank or already present.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(append([]string(nil), tags...), tag)
}

// RemoveTag drops every occurrence of tag.
func RemoveTag(tags []string, tag string) []string {
	return withoutAll(tags, tag)
}

// CleanTags trims tags and drops blanks and repeats, keeping first-seen order.
func CleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		out = AddTag(out, t)
	}
	return out
}
