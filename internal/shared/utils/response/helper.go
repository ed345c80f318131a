package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope every cinely endpoint uses.
// Availability and adjacency results ride in data even on non-2xx replies,
// so clients always get the typed payload alongside the message.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
