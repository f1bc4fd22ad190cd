package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kanban/internal/board"
	"kanban/internal/models"
	"kanban/internal/storage/sqlite"
)

// ErrUnknownFormat is returned for seed files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown seed format")

// File is the YAML layout of a board seed.
type File struct {
	Columns []models.Column `yaml:"columns"`
	Tasks   []models.Task   `yaml:"tasks"`
}

// Default returns the empty four-column board used when no seed is configured.
func Default() models.Board {
	return models.Board{
		Columns: []models.Column{
			{ID: "todo", Title: "To Do", Color: "#6b7280", TaskIDs: []string{}, MaxTasks: 10},
			{ID: "in-progress", Title: "In Progress", Color: "#3b8276", TaskIDs: []string{}, MaxTasks: 5},
			{ID: "review", Title: "Review", Color: "#f59e0b", TaskIDs: []string{}, MaxTasks: 3},
			{ID: "done", Title: "Done", Color: "#10b981", TaskIDs: []string{}},
		},
		Tasks: map[string]models.Task{},
	}
}

// Load reads the board stored at path. YAML files and SQLite fixtures are
// supported; an empty path yields Default. The result satisfies board.Check.
func Load(ctx context.Context, path string, logger *slog.Logger) (models.Board, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return Default(), nil
	}

	var (
		b   models.Board
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = loadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		b, err = loadSQLite(ctx, path, logger)
	default:
		return models.Board{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return models.Board{}, err
	}
	if err := board.Check(b); err != nil {
		return models.Board{}, fmt.Errorf("seed %s: %w", path, err)
	}

	logger.Info("board seed loaded", slog.String("path", path), slog.Int("columns", len(b.Columns)), slog.Int("tasks", len(b.Tasks)))
	return b, nil
}

// Parse decodes a YAML seed. Tasks without a status take the status of the
// column that lists them.
func Parse(data []byte) (models.Board, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Board{}, fmt.Errorf("decode seed: %w", err)
	}

	b := models.Board{
		Columns: make([]models.Column, len(f.Columns)),
		Tasks:   make(map[string]models.Task, len(f.Tasks)),
	}
	owner := make(map[string]string)
	for i, c := range f.Columns {
		if c.TaskIDs == nil {
			c.TaskIDs = []string{}
		}
		b.Columns[i] = c
		for _, id := range c.TaskIDs {
			if _, seen := owner[id]; !seen {
				owner[id] = c.ID
			}
		}
	}
	for _, t := range f.Tasks {
		if _, dup := b.Tasks[t.ID]; dup {
			return models.Board{}, fmt.Errorf("decode seed: duplicate task %q", t.ID)
		}
		if t.Status == "" {
			t.Status = owner[t.ID]
		}
		b.Tasks[t.ID] = t
	}
	return b, nil
}

// Encode renders a board as a YAML seed, listing tasks in column order.
func Encode(b models.Board) ([]byte, error) {
	f := File{Columns: b.Columns}
	for _, c := range b.Columns {
		f.Tasks = append(f.Tasks, b.ColumnTasks(c.ID)...)
	}
	return yaml.Marshal(f)
}

// WriteFixture stores b in the SQLite fixture at path.
func WriteFixture(ctx context.Context, path string, b models.Board, logger *slog.Logger) error {
	if err := board.Check(b); err != nil {
		return fmt.Errorf("fixture %s: %w", path, err)
	}
	store, err := sqlite.Open(path, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveBoard(ctx, b)
}

func loadYAML(path string) (models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Board{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data)
}

func loadSQLite(ctx context.Context, path string, logger *slog.Logger) (models.Board, error) {
	if _, err := os.Stat(path); err != nil {
		return models.Board{}, fmt.Errorf("open fixture: %w", err)
	}
	store, err := sqlite.Open(path, logger)
	if err != nil {
		return models.Board{}, err
	}
	defer store.Close()
	return store.LoadBoard(ctx)
}
