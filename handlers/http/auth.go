package httpHandler

import (
	"net/http"

	"workout-server/sessions"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.UserUseCase
	store   *sessions.Store
}

func NewAuthHandler(useCase *usecases.UserUseCase, store *sessions.Store) *AuthHandler {
	return &AuthHandler{
		useCase: useCase,
		store:   store,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in usecases.RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.Register(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register user",
		})
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": res.Errors,
		})
		return
	}

	// Registration logs the new user in immediately.
	h.setSession(c, res.Value.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    res.Value,
	})
}

type loginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := h.useCase.Login(in.Username, in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}
	if !res.Ok() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"errors": res.Errors,
		})
		return
	}

	h.setSession(c, res.Value.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"data":    res.Value,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil {
		h.store.Destroy(token)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) setSession(c *gin.Context, userID string) {
	token := h.store.Create(userID)
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
}
