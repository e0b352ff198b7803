package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalErrorMessage = "internal server error"

// OK writes data as the bare JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Fail aborts with a {"message": msg} body.
func Fail(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, gin.H{"message": msg})
}

// FailField is Fail plus the offending request field.
func FailField(c *gin.Context, httpStatus int, msg, field string) {
	if field == "" {
		Fail(c, httpStatus, msg)
		return
	}
	c.AbortWithStatusJSON(httpStatus, gin.H{"message": msg, "field": field})
}

// Internal hides err from the client; callers log it.
func Internal(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, InternalErrorMessage)
}
