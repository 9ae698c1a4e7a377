package rest

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// mountStatic serves the compiled frontend. Unknown paths outside /api fall
// back to index.html so client side routes resolve.
func (s *Server) mountStatic() {
	if s.staticDir == "" {
		return
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		log.Printf("static directory %q missing; API only mode", s.staticDir)
		return
	}

	indexPath := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		log.Printf("index.html not found in %q", s.staticDir)
		return
	}

	assetsDir := filepath.Join(s.staticDir, "assets")
	if _, err := os.Stat(assetsDir); err == nil {
		s.echo.Static("/assets", assetsDir)
	}

	favicon := filepath.Join(s.staticDir, "favicon.ico")
	if _, err := os.Stat(favicon); err == nil {
		s.echo.File("/favicon.ico", favicon)
	}

	s.echo.File("/", indexPath)
	s.echo.RouteNotFound("/*", func(c echo.Context) error {
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return echo.NewHTTPError(http.StatusNotFound, "endpoint not found")
		}
		return c.File(indexPath)
	})
}
