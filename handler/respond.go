package handler

import (
	"errors"
	"net/http"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps controller errors to HTTP responses. Validation failures
// come back field-by-field so a client can attach each message to its input.
func respondError(c *gin.Context, err error) {
	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
