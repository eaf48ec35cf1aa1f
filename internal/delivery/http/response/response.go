package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape: the HTTP status repeated in the
// body, with the payload beneath it. Errors ride in the payload as an error
// object.
type Envelope struct {
	Code    int `json:"code"`
	Payload any `json:"payload"`
}

type errorPayload struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// JSON sends a success envelope.
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, Envelope{Code: code, Payload: payload})
}

// Error sends an error envelope. An empty errType is derived from the code.
func Error(c *gin.Context, code int, message, errType string) {
	if errType == "" {
		errType = TypeForCode(code)
	}
	c.JSON(code, Envelope{
		Code:    code,
		Payload: errorPayload{Error: ErrorDetail{Message: message, Type: errType}},
	})
}

// TypeForCode maps an HTTP status to the error type label clients switch on.
func TypeForCode(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "BadRequestError"
	case http.StatusUnauthorized:
		return "UnauthorizedError"
	case http.StatusForbidden:
		return "ForbiddenError"
	case http.StatusNotFound:
		return "NotFoundError"
	case http.StatusUnprocessableEntity:
		return "ValidationError"
	case http.StatusTooManyRequests:
		return "TooManyRequestsError"
	case http.StatusServiceUnavailable:
		return "ServiceUnavailableError"
	default:
		return "InternalServerError"
	}
}
