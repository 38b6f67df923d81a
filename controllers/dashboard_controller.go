package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itstoasti/KetoMate-sub001/services"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetDashboard loads profile, today's meals and weight history in one shot.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	dash, err := dc.Dashboard.Load(userID, date)
	if err != nil {
		if errors.Is(err, services.ErrLoadDiscarded) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "signed out"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}
