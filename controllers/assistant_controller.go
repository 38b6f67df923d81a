package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itstoasti/KetoMate-sub001/services"
)

type AssistantController struct {
	Assistant   *services.AssistantService
	Suggestions *services.SuggestionService
}

func NewAssistantController(assistant *services.AssistantService, suggestions *services.SuggestionService) *AssistantController {
	return &AssistantController{Assistant: assistant, Suggestions: suggestions}
}

func (ac *AssistantController) ListConversations(c *gin.Context) {
	userID := c.GetUint("userID")
	c.JSON(http.StatusOK, ac.Assistant.ListConversations(userID))
}

func (ac *AssistantController) CreateConversation(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Title string `json:"title"`
	}
	_ = c.ShouldBindJSON(&req) // title is optional

	conv := ac.Assistant.CreateConversation(userID, req.Title)
	c.JSON(http.StatusCreated, conv)
}

func (ac *AssistantController) SendMessage(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := ac.Assistant.Ask(userID, c.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (ac *AssistantController) GetSuggestions(c *gin.Context) {
	userID := c.GetUint("userID")

	suggestions, err := ac.Suggestions.SuggestMeals(userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
