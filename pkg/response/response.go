package response

import (
	"errors"
	"net/http"
	"time"

	"bank-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the gin context key holding the request correlation ID.
const CtxRequestID = "request_id"

// HeaderRequestID echoes the correlation ID on every response.
const HeaderRequestID = "X-Request-ID"

// Meta is embedded in every JSON envelope.
type Meta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

type SuccessResponse struct {
	Data any `json:"data"`
	Meta
}

type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Meta
}

// JSON wraps data in a SuccessResponse.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{Data: data, Meta: meta(c)})
}

func Created(c *gin.Context, data any) {
	JSON(c, http.StatusCreated, data)
}

// Text sends body verbatim as UTF-8 plain text. Statements are not wrapped.
func Text(c *gin.Context, status int, body string) {
	c.Header(HeaderRequestID, requestID(c))
	c.Data(status, "text/plain; charset=utf-8", []byte(body))
}

// Error writes err as an ErrorResponse. Anything that is not an
// *apperror.AppError is reported as an opaque internal error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Meta:      meta(c),
	})
}

func meta(c *gin.Context) Meta {
	return Meta{
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func requestID(c *gin.Context) string {
	if id := c.GetString(CtxRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
