package board

import (
	"testing"
	"time"

	"kanban/internal/models"
)

func TestLoadReport(t *testing.T) {
	b := newBoard([]string{"todo", "doing", "done"}, map[string][]string{
		"todo":  {"t1", "t2", "t3", "t4"},
		"doing": {"t5", "t6"},
		"done":  {"t7"},
	})
	b.Columns[0].MaxTasks = 5
	b.Columns[1].MaxTasks = 1
	past := fixedNow.Add(-24 * time.Hour)
	future := fixedNow.Add(24 * time.Hour)
	t1 := b.Tasks["t1"]
	t1.DueDate = &past
	b.Tasks["t1"] = t1
	t2 := b.Tasks["t2"]
	t2.DueDate = &future
	b.Tasks["t2"] = t2

	report := LoadReport(b, fixedNow)
	if len(report) != 3 {
		t.Fatalf("got %d entries", len(report))
	}

	want := []ColumnLoad{
		{ColumnID: "todo", Title: "todo", Count: 4, MaxTasks: 5, NearLimit: true, Overdue: 1},
		{ColumnID: "doing", Title: "doing", Count: 2, MaxTasks: 1, OverLimit: true},
		{ColumnID: "done", Title: "done", Count: 1},
	}
	for i, w := range want {
		if report[i] != w {
			t.Errorf("report[%d] = %+v, want %+v", i, report[i], w)
		}
	}
}

func TestTaskOverdue(t *testing.T) {
	due := fixedNow
	task := models.Task{DueDate: &due}
	if task.Overdue(fixedNow) {
		t.Fatal("due now is not overdue")
	}
	if !task.Overdue(fixedNow.Add(time.Second)) {
		t.Fatal("expected overdue after due date")
	}
	if (models.Task{}).Overdue(fixedNow) {
		t.Fatal("task without due date is never overdue")
	}
}
