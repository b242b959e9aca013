package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes the envelope every handler responds with. errs carries the
// error message shown to the client; data is omitted when nil.
func JSON(c *gin.Context, message string, status int, data interface{}, errs error) {
	responsedata := gin.H{
		"message": message,
		"data":    data,
		"errors":  nil,
		"status":  http.StatusText(status),
	}
	if errs != nil {
		responsedata["errors"] = errs.Error()
	}

	c.JSON(status, responsedata)
}
