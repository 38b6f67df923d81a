package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itstoasti/KetoMate-sub001/services"
)

type FoodController struct {
	Foods     *services.FoodService
	Assistant *services.AssistantService
	Vision    *services.VisionService
}

func NewFoodController(foods *services.FoodService, assistant *services.AssistantService, vision *services.VisionService) *FoodController {
	return &FoodController{Foods: foods, Assistant: assistant, Vision: vision}
}

// GET /food/search?q=cheese
func (fc *FoodController) SearchFoods(c *gin.Context) {
	userID := c.GetUint("userID")

	out, err := fc.Foods.Search(userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /food/barcode/:code
func (fc *FoodController) LookupBarcode(c *gin.Context) {
	out, err := fc.Foods.LookupBarcode(c.Param("code"))
	if err != nil {
		// The AI fallback failing is a 502; a catalog read failing is ours.
		if errors.Is(err, services.ErrAssistantUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/analyze  { "query": "grilled chicken thigh" }
func (fc *FoodController) AnalyzeFood(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	out, err := fc.Assistant.AnalyzeFood(req.Query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /food/scan-label  { "image_base64": "data:image/jpeg;base64,..." }
func (fc *FoodController) ScanLabel(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	out, err := fc.Vision.ScanLabel(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
