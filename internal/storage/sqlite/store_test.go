package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"kanban/internal/models"
)

func sampleBoard() models.Board {
	created := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	return models.Board{
		Columns: []models.Column{
			{ID: "todo", Title: "To Do", Color: "#6b7280", TaskIDs: []string{"task-2", "task-1"}, MaxTasks: 10},
			{ID: "review", Title: "Review", Color: "#f59e0b", TaskIDs: []string{}, MaxTasks: 3},
			{ID: "done", Title: "Done", Color: "#10b981", TaskIDs: []string{"task-3"}},
		},
		Tasks: map[string]models.Task{
			"task-1": {ID: "task-1", Title: "Implement drag and drop", Status: "todo", Priority: models.PriorityHigh,
				Assignee: "John Doe", Tags: []string{"frontend", "feature, interaction"}, CreatedAt: created, DueDate: &due},
			"task-2": {ID: "task-2", Title: "Design task modal", Status: "todo", CreatedAt: created},
			"task-3": {ID: "task-3", Title: "Install dependencies", Description: "npm", Status: "done", Priority: models.PriorityLow, CreatedAt: created},
		},
	}
}

func TestSaveAndLoadBoard(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fixtures", "board.db")

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	want := sampleBoard()
	if err := store.SaveBoard(ctx, want); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	got, err := store.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}

	if len(got.Columns) != len(want.Columns) {
		t.Fatalf("got %d columns, want %d", len(got.Columns), len(want.Columns))
	}
	for i := range want.Columns {
		if !reflect.DeepEqual(got.Columns[i], want.Columns[i]) {
			t.Errorf("column %d = %+v, want %+v", i, got.Columns[i], want.Columns[i])
		}
	}
	for id, w := range want.Tasks {
		g, ok := got.Tasks[id]
		if !ok {
			t.Fatalf("task %q missing", id)
		}
		if g.Title != w.Title || g.Status != w.Status || g.Priority != w.Priority || g.Description != w.Description || g.Assignee != w.Assignee {
			t.Errorf("task %q = %+v, want %+v", id, g, w)
		}
		if !reflect.DeepEqual(g.Tags, w.Tags) {
			t.Errorf("task %q tags = %v, want %v", id, g.Tags, w.Tags)
		}
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("task %q created = %v, want %v", id, g.CreatedAt, w.CreatedAt)
		}
		if (g.DueDate == nil) != (w.DueDate == nil) || (g.DueDate != nil && !g.DueDate.Equal(*w.DueDate)) {
			t.Errorf("task %q due = %v, want %v", id, g.DueDate, w.DueDate)
		}
	}
}

func TestSaveBoardReplacesContents(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "board.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.SaveBoard(ctx, sampleBoard()); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}
	small := models.Board{Columns: []models.Column{{ID: "only", Title: "Only"}}}
	if err := store.SaveBoard(ctx, small); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}

	got, err := store.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(got.Columns) != 1 || got.Columns[0].ID != "only" || len(got.Tasks) != 0 {
		t.Fatalf("unexpected board: %+v", got)
	}
}

func TestSaveBoardKeepsMissingCreatedAt(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "board.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	b := models.Board{
		Columns: []models.Column{{ID: "todo", Title: "To Do", TaskIDs: []string{"a"}}},
		Tasks:   map[string]models.Task{"a": {ID: "a", Title: "A", Status: "todo"}},
	}
	if err := store.SaveBoard(ctx, b); err != nil {
		t.Fatalf("SaveBoard: %v", err)
	}
	got, err := store.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if created := got.Tasks["a"].CreatedAt; !created.IsZero() {
		t.Fatalf("CreatedAt = %v, want zero time", created)
	}
}

func TestSaveBoardRejectsDanglingIDs(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "board.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	b := models.Board{Columns: []models.Column{{ID: "todo", Title: "To Do", TaskIDs: []string{"ghost"}}}}
	if err := store.SaveBoard(context.Background(), b); err == nil {
		t.Fatal("expected error for dangling task id")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("", nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}
