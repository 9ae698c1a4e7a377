package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

func (s *Server) handleListTasks(c echo.Context) error {
	result, err := s.tasks.ListTasks(c.Request().Context(), identity(c), query.TaskListQuery{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleDashboard(c echo.Context) error {
	result, err := s.tasks.Dashboard(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetTask(c echo.Context) error {
	result, err := s.tasks.GetTask(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var createCommand command.CreateTaskCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.tasks.CreateTask(c.Request().Context(), identity(c), &createCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

func (s *Server) handleUpdateTaskStatus(c echo.Context) error {
	var statusCommand command.UpdateTaskStatusCommand
	if err := c.Bind(&statusCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	statusCommand.TaskId = c.Param("id")

	result, err := s.tasks.UpdateStatus(c.Request().Context(), identity(c), &statusCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleUpdateTaskChecklist(c echo.Context) error {
	var checklistCommand command.UpdateTaskChecklistCommand
	if err := c.Bind(&checklistCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	checklistCommand.TaskId = c.Param("id")

	result, err := s.tasks.UpdateChecklist(c.Request().Context(), identity(c), &checklistCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	result, err := s.tasks.DeleteTask(c.Request().Context(), identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
