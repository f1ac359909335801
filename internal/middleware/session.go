package middleware

import (
	"fmt"

	"ripplenet-backend/internal/conf"
	"ripplenet-backend/internal/model"
	"ripplenet-backend/pkg/app"
	"ripplenet-backend/pkg/errcode"
	"ripplenet-backend/pkg/json"

	"github.com/gin-gonic/gin"
)

func Session() gin.HandlerFunc {
	redis := conf.Redis
	db := conf.MustGormDB()
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			response := app.NewResponse(c)
			response.ToErrorResponse(errcode.UnauthorizedTokenError)
			c.Abort()
			return
		}

		ecode := errcode.Success
		raw, err := redis.Get(c, fmt.Sprintf("session:%s", token)).Bytes()
		if err == nil {
			var session app.Session
			if err = json.Unmarshal(raw, &session); err != nil {
				ecode = errcode.UnauthorizedTokenError
			} else {
				user := &model.User{
					Model: &model.Model{
						ID: session.UserID,
					},
				}
				if user, err = user.Get(db); err != nil {
					ecode = errcode.UnauthorizedAuthNotExist
				} else {
					c.Set("USER", user)
				}
			}
		} else {
			ecode = errcode.UnauthorizedTokenError
		}

		if ecode != errcode.Success {
			response := app.NewResponse(c)
			response.ToErrorResponse(ecode)
			c.Abort()
			return
		}

		c.Next()
	}
}
