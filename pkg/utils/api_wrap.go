package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP status codes.
// Anything unrecognized is a 500 with a generic message; details stay in the
// server log at the point the error was produced.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPage), errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrInvalidOtpToken):
		RespondError(c, http.StatusBadRequest, "Invalid or expired code")
	case errors.Is(err, ErrTierDenied):
		RespondError(c, http.StatusForbidden, "Your subscription tier does not allow access to this resource")
	case errors.Is(err, ErrClassFull):
		RespondError(c, http.StatusConflict, "Class is fully booked")
	case errors.Is(err, ErrAlreadyReserved):
		RespondError(c, http.StatusConflict, "You already reserved this class")
	case errors.Is(err, ErrOutOfStock):
		RespondError(c, http.StatusConflict, "Product is out of stock")
	case errors.Is(err, ErrTicketClosed):
		RespondError(c, http.StatusConflict, "Ticket is closed")
	case errors.Is(err, ErrCoachRequired):
		RespondError(c, http.StatusBadRequest, "Referenced account is not a coach")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrRecordNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrVideoNotFound),
		errors.Is(err, ErrClassNotFound),
		errors.Is(err, ErrReservationMissing),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrTicketNotFound),
		errors.Is(err, ErrReceiverNotFound):
		RespondError(c, http.StatusNotFound, "Resource not found")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
