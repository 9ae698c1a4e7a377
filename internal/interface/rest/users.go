package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleListMembers(c echo.Context) error {
	result, err := s.users.ListMembers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (s *Server) handleGetMember(c echo.Context) error {
	result, err := s.users.GetMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (s *Server) handleDeleteMember(c echo.Context) error {
	result, err := s.users.DeleteMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
