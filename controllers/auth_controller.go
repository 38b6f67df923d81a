package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itstoasti/KetoMate-sub001/services"
)

type AuthController struct {
	Sessions  *services.SessionRegistry
	Hub       *services.RealtimeHub
	Assistant *services.AssistantService
}

func NewAuthController(sessions *services.SessionRegistry, hub *services.RealtimeHub, assistant *services.AssistantService) *AuthController {
	return &AuthController{Sessions: sessions, Hub: hub, Assistant: assistant}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RegisterUser(input.Email, input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	ac.Sessions.Authenticate(user.ID)
	c.JSON(http.StatusOK, gin.H{"token": token, "onboarded": user.Onboarded})
}

// Logout walks the session through SigningOut so any data load completing
// mid-flight gets discarded, then clears the in-memory assistant state and
// drops live websockets.
func (ac *AuthController) Logout(c *gin.Context) {
	userID := c.GetUint("userID")

	if !ac.Sessions.BeginSignOut(userID) {
		// Already anonymous; nothing to tear down.
		c.Status(http.StatusNoContent)
		return
	}
	ac.Assistant.ClearUser(userID)
	ac.Hub.DisconnectUser(userID)
	ac.Sessions.FinishSignOut(userID)

	c.Status(http.StatusNoContent)
}
