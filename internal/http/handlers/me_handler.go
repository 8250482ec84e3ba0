package handlers

import (
	"net/http"

	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the identity the auth middleware resolved for this request.
func (h *MeHandler) GetMe(c *gin.Context) {
	value, ok := c.Get("user")
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing user", nil))
		return
	}

	user, ok := value.(models.UserView)
	if !ok {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing user", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}
