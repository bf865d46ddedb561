package database

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionKey = "db_session"

// NewSession returns a GORM session bound to the request context. It holds no
// connection of its own; the pool checks one out per statement.
func NewSession(context *gin.Context) *gorm.DB {
	return DB.WithContext(context.Request.Context()).Session(&gorm.Session{})
}

func SetSession(context *gin.Context, session *gorm.DB) {
	context.Set(sessionKey, session)
}

func ClearSession(context *gin.Context) {
	context.Set(sessionKey, nil)
}

// Session returns the request's session, opening one if the session
// middleware did not run.
func Session(context *gin.Context) *gorm.DB {
	if value, ok := context.Get(sessionKey); ok {
		if session, ok := value.(*gorm.DB); ok && session != nil {
			return session
		}
	}
	return NewSession(context)
}
