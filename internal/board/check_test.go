package board

import (
	"errors"
	"strings"
	"testing"

	"kanban/internal/models"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *models.Board)
		want   string
	}{
		{name: "consistent", mutate: func(b *models.Board) {}},
		{name: "dangling id", mutate: func(b *models.Board) {
			b.Columns[0].TaskIDs = append(b.Columns[0].TaskIDs, "ghost")
		}, want: "unknown task"},
		{name: "listed twice", mutate: func(b *models.Board) {
			b.Columns[0].TaskIDs = append(b.Columns[0].TaskIDs, "t1")
		}, want: "listed twice"},
		{name: "two columns", mutate: func(b *models.Board) {
			b.Columns[1].TaskIDs = append(b.Columns[1].TaskIDs, "t1")
		}, want: "listed in columns"},
		{name: "status drift", mutate: func(b *models.Board) {
			t1 := b.Tasks["t1"]
			t1.Status = "done"
			b.Tasks["t1"] = t1
		}, want: "has status"},
		{name: "orphan", mutate: func(b *models.Board) {
			b.Tasks["lost"] = models.Task{ID: "lost", Title: "lost", Status: "todo"}
		}, want: "in no column"},
		{name: "blank title", mutate: func(b *models.Board) {
			t1 := b.Tasks["t1"]
			t1.Title = "   "
			b.Tasks["t1"] = t1
		}, want: "empty title"},
		{name: "unknown priority", mutate: func(b *models.Board) {
			t1 := b.Tasks["t1"]
			t1.Priority = "whenever"
			b.Tasks["t1"] = t1
		}, want: "unknown priority"},
		{name: "duplicate column", mutate: func(b *models.Board) {
			b.Columns = append(b.Columns, models.Column{ID: "todo"})
		}, want: "duplicate column"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard([]string{"todo", "done"}, map[string][]string{"todo": {"t1", "t2"}, "done": {"t3"}})
			tt.mutate(&b)
			err := Check(b)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Check: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInconsistentBoard) {
				t.Fatalf("Check err = %v, want ErrInconsistentBoard", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Check err = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}
