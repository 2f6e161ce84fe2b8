package httperr

import (
	"net/http"

	"teetime-exchange/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Internal is the body of every unclassified failure.
func Internal() Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// AbortWithError keeps err on the gin context for logging while the client
// only sees msg.
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

// Abort maps a use case error onto the HTTP taxonomy. Validation, not-found
// and upstream messages are shown verbatim; anything else is hidden.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, errs.PublicMessage(err)
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden, "UNAUTHORIZED"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, errs.PublicMessage(err)
	case errs.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway, errs.PublicMessage(err)
	default:
		return http.StatusInternalServerError, Internal().Error.Message
	}
}
