package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/domain"
)

// errorHandler writes every handler and middleware error as JSON.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(status)
	} else {
		sendErr = c.JSON(status, body)
	}
	if sendErr != nil {
		log.Printf("failed to write error response: %v", sendErr)
	}
}

func errorResponse(err error) (int, echo.Map) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, echo.Map{"message": message}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, echo.Map{"message": "User not found"}
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, echo.Map{"message": "Task not found"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, echo.Map{"message": "Not found"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, echo.Map{"message": "Not authorized"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, echo.Map{"message": domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, echo.Map{"message": "Access denied"}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, echo.Map{"message": err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, echo.Map{"message": err.Error()}
	case errors.Is(err, domain.ErrTooManyRequests):
		return http.StatusTooManyRequests, echo.Map{"message": "Too many attempts, try again later"}
	default:
		return http.StatusInternalServerError, echo.Map{"message": "server error", "error": err.Error()}
	}
}
