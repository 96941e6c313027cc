package handlers

import (
	"net/http"

	"gram/repositories"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users repositories.UserRepository
}

func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser returns the public profile for a username.
func (h *UserHandler) GetUser(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	user, err := h.users.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":  user.Username,
		"name":      user.Name,
		"bio":       user.Bio,
		"imageUrl":  user.ImageURL,
		"createdAt": user.CreatedAt,
	})
}
