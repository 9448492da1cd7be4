package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant-pos-api/errs"

	"github.com/gin-gonic/gin"
)

// fail maps a service error to its transport status. Unknown errors are
// logged and reported as a bare 500; internals never reach the client.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrAuthentication):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrAuthorization):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg, "kind": errs.KindOf(err)})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
}
