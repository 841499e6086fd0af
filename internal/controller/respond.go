package controller

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/internal/apperr"
)

// respondError translates the error taxonomy into the HTTP surface. Every
// response carries a stable machine-readable kind next to the message.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	// Foreign errors get a generic message; internals stay out of responses.
	body := gin.H{"error": "Internal server error", "kind": apperr.KindOf(err).String()}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		body["error"] = ae.Message
		if ae.Field != "" {
			body["field"] = ae.Field
		}
		if ae.RetryAfter > 0 {
			retryAfter := int(math.Ceil(ae.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			body["retry_after"] = retryAfter
		}
	}

	c.JSON(status, body)
}
