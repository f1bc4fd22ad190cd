package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"kanban/internal/models"
)

// Store reads and writes board fixtures kept in a SQLite file. The running
// board never writes back to it; fixtures only seed a new session.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open initializes a fixture database and runs the required migrations.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=ON", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS board_columns (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            color TEXT NOT NULL DEFAULT '',
            max_tasks INTEGER NOT NULL DEFAULT 0,
            position INTEGER NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id TEXT PRIMARY KEY,
            column_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            priority TEXT NOT NULL DEFAULT '',
            assignee TEXT NOT NULL DEFAULT '',
            tags TEXT NOT NULL DEFAULT '[]',
            created_at DATETIME NOT NULL,
            due_date DATETIME,
            FOREIGN KEY(column_id) REFERENCES board_columns(id) ON DELETE CASCADE
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_column ON tasks(column_id, position);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// LoadBoard reads the fixture into a board. Column order follows the column
// position and task order within a column follows the task position.
func (s *Store) LoadBoard(ctx context.Context) (models.Board, error) {
	board := models.Board{Tasks: map[string]models.Task{}}

	rows, err := s.db.QueryContext(ctx, `SELECT id, title, color, max_tasks FROM board_columns ORDER BY position, id`)
	if err != nil {
		return models.Board{}, fmt.Errorf("list columns: %w", err)
	}
	for rows.Next() {
		var c models.Column
		if err := rows.Scan(&c.ID, &c.Title, &c.Color, &c.MaxTasks); err != nil {
			rows.Close()
			return models.Board{}, fmt.Errorf("scan column: %w", err)
		}
		c.TaskIDs = []string{}
		board.Columns = append(board.Columns, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return models.Board{}, fmt.Errorf("list columns: %w", err)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `SELECT id, column_id, title, description, priority, assignee, tags, created_at, due_date
        FROM tasks ORDER BY column_id, position, id`)
	if err != nil {
		return models.Board{}, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t        models.Task
			priority string
			tags     string
			due      sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.Status, &t.Title, &t.Description, &priority, &t.Assignee, &tags, &t.CreatedAt, &due); err != nil {
			return models.Board{}, fmt.Errorf("scan task: %w", err)
		}
		t.Priority = models.Priority(priority)
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
				return models.Board{}, fmt.Errorf("decode tags of %q: %w", t.ID, err)
			}
		}
		if due.Valid {
			d := due.Time
			t.DueDate = &d
		}

		idx := board.ColumnIndex(t.Status)
		if idx < 0 {
			return models.Board{}, fmt.Errorf("task %q references unknown column %q", t.ID, t.Status)
		}
		board.Columns[idx].TaskIDs = append(board.Columns[idx].TaskIDs, t.ID)
		board.Tasks[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return models.Board{}, fmt.Errorf("list tasks: %w", err)
	}

	s.logger.Debug("fixture loaded", slog.Int("columns", len(board.Columns)), slog.Int("tasks", len(board.Tasks)))
	return board, nil
}

// SaveBoard replaces the fixture contents with board in one transaction.
func (s *Store) SaveBoard(ctx context.Context, board models.Board) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM board_columns`); err != nil {
		return fmt.Errorf("clear columns: %w", err)
	}

	for pos, c := range board.Columns {
		if _, err := tx.ExecContext(ctx, `INSERT INTO board_columns(id, title, color, max_tasks, position) VALUES(?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Color, c.MaxTasks, pos); err != nil {
			return fmt.Errorf("insert column %q: %w", c.ID, err)
		}
		for taskPos, id := range c.TaskIDs {
			t, ok := board.Tasks[id]
			if !ok {
				return fmt.Errorf("column %q lists unknown task %q", c.ID, id)
			}
			var due any
			if t.DueDate != nil {
				due = t.DueDate.UTC()
			}
			tags, err := json.Marshal(t.Tags)
			if err != nil {
				return fmt.Errorf("encode tags of %q: %w", t.ID, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO tasks(id, column_id, position, title, description, priority, assignee, tags, created_at, due_date)
                VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, c.ID, taskPos, t.Title, t.Description, string(t.Priority), t.Assignee, string(tags), t.CreatedAt.UTC(), due); err != nil {
				return fmt.Errorf("insert task %q: %w", t.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("fixture written", slog.Int("columns", len(board.Columns)), slog.Int("tasks", len(board.Tasks)))
	return nil
}
