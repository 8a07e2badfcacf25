package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors reports a validation failure with the offending
// fields, so the form can highlight them.
func JSONFieldErrors(c *gin.Context, code int, fields []string) {
	c.JSON(code, gin.H{"success": false, "error": "missing or invalid fields", "fields": fields})
}
