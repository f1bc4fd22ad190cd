package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kanban/internal/board"
	"kanban/internal/models"
)

type updateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	Assignee     *string    `json:"assignee"`
	Tags         *[]string  `json:"tags"`
	DueDate      *time.Time `json:"dueDate"`
	ClearDueDate bool       `json:"clearDueDate"`
}

type moveTaskRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Index *int   `json:"index"`
}

// handleCreateTask validates the form payload and appends a new task to a column.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req models.TaskDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := board.NewTask(c.Param("id"), req, s.now())
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	snapshot, err := s.store.Create(c.Param("id"), task)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"task": snapshot.Tasks[task.ID], "board": snapshot})
}

// handleUpdateTask applies a partial edit; a new status moves the task to the end of that column.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	patch := req.patch()
	if patch.Empty() {
		s.respondError(c, http.StatusBadRequest, errors.New("no fields to update"))
		return
	}
	if err := board.ValidatePatch(patch); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("id")
	snapshot, err := s.store.Update(id, patch)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"task": snapshot.Tasks[id], "board": snapshot})
}

// handleMoveTask places a task at an index of a column. Without an index the
// task goes to the end of the column.
func (s *Server) handleMoveTask(c *gin.Context) {
	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.To == "" {
		s.respondError(c, http.StatusBadRequest, errors.New("destination column is required"))
		return
	}

	index := board.End
	if req.Index != nil {
		index = *req.Index
	}

	id := c.Param("id")
	snapshot, err := s.store.Move(id, req.From, req.To, index)
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"task": snapshot.Tasks[id], "board": snapshot})
}

// handleDeleteTask removes a task; unknown ids succeed without changes.
func (s *Server) handleDeleteTask(c *gin.Context) {
	snapshot, err := s.store.Delete(c.Param("id"))
	if err != nil {
		s.respondError(c, statusFor(err), err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted", "board": snapshot})
}

func (r updateTaskRequest) patch() models.TaskPatch {
	var p models.TaskPatch
	if r.Title != nil {
		p = p.SetTitle(*r.Title)
	}
	if r.Description != nil {
		p = p.SetDescription(*r.Description)
	}
	if r.Status != nil {
		p = p.SetStatus(*r.Status)
	}
	if r.Priority != nil {
		p = p.SetPriority(models.Priority(*r.Priority))
	}
	if r.Assignee != nil {
		p = p.SetAssignee(*r.Assignee)
	}
	if r.Tags != nil {
		p = p.SetTags(board.CleanTags(*r.Tags))
	}
	if r.ClearDueDate {
		p = p.RemoveDueDate()
	} else if r.DueDate != nil {
		p = p.SetDueDate(*r.DueDate)
	}
	return p
}
