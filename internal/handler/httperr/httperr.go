package httperr

import (
	"net/http"

	"groupbuy-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status by its error class. Business errors expose
// their own message, anything else is reported as msg with a 500.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, status, err, publicMessage(err), nil)
}

func StatusOf(err error) int {
	switch errs.ClassOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrInvalidArgument:
		return http.StatusBadRequest
	case errs.ErrInvalidState, errs.ErrAlreadyDone:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the innermost message, without wrapping context added on
// the way up.
func publicMessage(err error) string {
	for {
		next := errs.UnwrapOnce(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
