package controllers

import (
	"net/http"
	"strconv"

	"github.com/Malav2364/calorify/services"

	"github.com/gin-gonic/gin"
)

type DayController struct {
	day     *services.DayService
	history *services.HistoryService
}

func NewDayController(day *services.DayService, history *services.HistoryService) *DayController {
	return &DayController{day: day, history: history}
}

// Close finalizes today's consumption into history and clears the ledger.
func (ctl *DayController) Close(c *gin.Context) {
	summary, err := ctl.day.CloseDay(currentUser(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"totalConsumed":  summary.TotalConsumed,
		"entriesDeleted": summary.EntriesDeleted,
		"target":         summary.Target,
	})
}

func (ctl *DayController) History(c *gin.Context) {
	limit := 30
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	history, err := ctl.history.List(currentUser(c).ID, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"history": history})
}
