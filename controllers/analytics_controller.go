package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itstoasti/KetoMate-sub001/services"
)

type AnalyticsController struct {
	Summary *services.SummaryService
}

func NewAnalyticsController(summary *services.SummaryService) *AnalyticsController {
	return &AnalyticsController{Summary: summary}
}

// GET /analytics/summary?days=7
func (sc *AnalyticsController) GetSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		days = n
	}

	summary, err := sc.Summary.Summary(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
