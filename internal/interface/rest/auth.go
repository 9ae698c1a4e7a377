package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/command"
	"task-service/internal/application/mapper"
)

func (s *Server) handleRegister(c echo.Context) error {
	var createCommand command.CreateUserCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.auth.Register(c.Request().Context(), &createCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

func (s *Server) handleLogin(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	loginCommand.ClientKey = c.RealIP()

	result, err := s.auth.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, mapper.NewUserResultFromEntity(identity(c)))
}
