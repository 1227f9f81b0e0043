package response

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationFailure is the payload returned when a request body fails the
// required-field rules. Messages carries one entry per failed rule.
type ValidationFailure struct {
	Code      int      `json:"code"`
	RequestID string   `json:"request_id,omitempty"`
	Messages  []string `json:"messages"`
}

// ValidationFailed maps a validator error to a 400 response listing one
// human-readable message per failed field rule.
func ValidationFailed(c echo.Context, err error) error {
	failure := ValidationFailure{
		Code:      http.StatusBadRequest,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			failure.Messages = append(failure.Messages, fieldMessage(fe))
		}
	} else {
		failure.Messages = append(failure.Messages, "Request body is invalid.")
	}

	return c.JSON(http.StatusBadRequest, failure)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	default:
		return fe.Field() + " is invalid."
	}
}
