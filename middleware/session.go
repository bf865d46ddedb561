package middleware

import (
	"itemstore/database"

	"github.com/gin-gonic/gin"
)

// Session scopes one database session to the request and drops it once the
// handler chain returns, whatever the outcome.
func Session(context *gin.Context) {
	database.SetSession(context, database.NewSession(context))
	defer database.ClearSession(context)

	context.Next()
}
