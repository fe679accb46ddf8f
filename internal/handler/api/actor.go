package api

import (
	"errors"
	"net/http"

	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errActorMismatch   = errors.New("acting user does not match the authenticated user")
)

// requireActor checks that the user id named in the body is the caller.
func requireActor(c *gin.Context, claimed uuid.UUID) bool {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return false
	}
	if userID != claimed {
		httperr.AbortWithError(c, http.StatusForbidden, errActorMismatch, "You can only act on your own behalf", nil)
		return false
	}
	return true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return userID, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
