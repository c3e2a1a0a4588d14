package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub/internal/domain"
)

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Created(c *gin.Context, data any) { c.JSON(http.StatusCreated, data) }

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Err maps a domain error kind onto its HTTP status. Unclassified errors
// become an opaque 500; the cause is for the access log, not the client.
func Err(c *gin.Context, err error) {
	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
		cf *domain.ConflictError
		ae *domain.AuthorizationError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &cf):
		c.JSON(http.StatusConflict, gin.H{"error": cf.Error()})
	case errors.As(err, &ae):
		c.JSON(http.StatusForbidden, gin.H{"error": ae.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
	}
}
