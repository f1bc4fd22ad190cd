package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban/internal/board"
)

// handleBoard returns the current snapshot.
func (s *Server) handleBoard(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"board": s.store.Snapshot()})
}

// handleBoardLoad reports how full each column is.
func (s *Server) handleBoardLoad(c *gin.Context) {
	report := board.LoadReport(s.store.Snapshot(), s.now())
	respondSuccess(c, http.StatusOK, gin.H{"columns": report})
}
