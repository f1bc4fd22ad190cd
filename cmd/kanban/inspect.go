package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kanban/internal/board"
	"kanban/internal/models"
	"kanban/internal/seed"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

var priorityColors = map[models.Priority]func(a ...interface{}) string{
	models.PriorityLow:    color.New(color.FgBlue).SprintFunc(),
	models.PriorityMedium: color.New(color.FgYellow).SprintFunc(),
	models.PriorityHigh:   color.New(color.FgHiRed).SprintFunc(),
	models.PriorityUrgent: color.New(color.Bold, color.FgRed).SprintFunc(),
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [seed]",
		Short: "Check a board seed and print its columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := cfg.Seed
			if len(args) == 1 {
				path = args[0]
			}

			b, err := seed.Load(cmd.Context(), path, cfg.NewLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), b, time.Now())
			return nil
		},
	}
}

func printBoard(w io.Writer, b models.Board, now time.Time) {
	for _, load := range board.LoadReport(b, now) {
		count := fmt.Sprintf("%d", load.Count)
		if load.MaxTasks > 0 {
			count = fmt.Sprintf("%d / %d", load.Count, load.MaxTasks)
		}
		header := fmt.Sprintf("%s %s", bold(load.Title), dim("("+count+")"))
		switch {
		case load.OverLimit:
			header += " " + red("over limit")
		case load.NearLimit:
			header += " " + yellow("near limit")
		}
		fmt.Fprintln(w, header)

		for _, t := range b.ColumnTasks(load.ColumnID) {
			fmt.Fprintf(w, "  - %s\n", taskLine(t, now))
		}
		fmt.Fprintln(w)
	}
}

func taskLine(t models.Task, now time.Time) string {
	parts := []string{t.Title}
	if paint, ok := priorityColors[t.Priority]; ok {
		parts = append([]string{paint("[" + string(t.Priority) + "]")}, parts...)
	}
	if t.Assignee != "" {
		parts = append(parts, dim("@"+initials(t.Assignee)))
	}
	if len(t.Tags) > 0 {
		parts = append(parts, dim("#"+strings.Join(t.Tags, " #")))
	}
	if t.DueDate != nil {
		due := "due " + t.DueDate.Format("Jan 2, 2006")
		if t.Overdue(now) {
			due = red(due)
		}
		parts = append(parts, due)
	}
	return strings.Join(parts, " ")
}

// initials returns up to two upper-case initials of name.
func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
