package api

import (
	"ripplenet-backend/internal/model"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/debug"

	"github.com/gin-gonic/gin"
)

func Version(c *gin.Context) {
	response := app.NewResponse(c)
	response.ToResponse(gin.H{
		"BuildInfo": debug.ReadBuildInfo(),
	})
}

func userFrom(c *gin.Context) (*model.User, bool) {
	if u, exists := c.Get("USER"); exists {
		user, ok := u.(*model.User)
		return user, ok
	}
	return nil, false
}
