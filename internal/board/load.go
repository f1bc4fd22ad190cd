package board

import (
	"time"

	"kanban/internal/models"
)

// ColumnLoad summarises how full a column is. Capacity limits are advisory.
type ColumnLoad struct {
	ColumnID  string `json:"columnId"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
	MaxTasks  int    `json:"maxTasks,omitempty"`
	NearLimit bool   `json:"nearLimit"`
	OverLimit bool   `json:"overLimit"`
	Overdue   int    `json:"overdue"`
}

// LoadReport computes a ColumnLoad per column, in column order. A column is
// near its limit at 80% of capacity and over it once the count exceeds it.
func LoadReport(b models.Board, now time.Time) []ColumnLoad {
	report := make([]ColumnLoad, 0, len(b.Columns))
	for _, col := range b.Columns {
		load := ColumnLoad{
			ColumnID: col.ID,
			Title:    col.Title,
			MaxTasks: col.MaxTasks,
		}
		for _, t := range b.ColumnTasks(col.ID) {
			load.Count++
			if t.Overdue(now) {
				load.Overdue++
			}
		}
		if col.MaxTasks > 0 {
			load.OverLimit = load.Count > col.MaxTasks
			load.NearLimit = !load.OverLimit && load.Count*5 >= col.MaxTasks*4
		}
		report = append(report, load)
	}
	return report
}
