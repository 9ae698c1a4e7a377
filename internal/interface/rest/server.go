package rest

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"task-service/internal/application/interfaces"
	"task-service/internal/domain/entities"
)

type Options struct {
	Users interfaces.UserService
	Auth  interfaces.AuthService
	Tasks interfaces.TaskService

	// RateLimitRPS and RateLimitBurst size the limiter shared by every
	// request. Zero RPS disables it.
	RateLimitRPS   float64
	RateLimitBurst int

	// StaticDir holds a built frontend served next to the API. Empty means
	// API only.
	StaticDir string

	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. Empty
	// means the peer address is the client address.
	TrustedProxies []string
}

type Server struct {
	echo      *echo.Echo
	users     interfaces.UserService
	auth      interfaces.AuthService
	tasks     interfaces.TaskService
	staticDir string
}

func New(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.IPExtractor = ipExtractor(opts.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Printf("%s %s %d %s id=%s err=%v", v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond), v.RequestID, v.Error)
				return nil
			}
			log.Printf("%s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond), v.RequestID)
			return nil
		},
	}))
	if opts.RateLimitRPS > 0 {
		e.Use(globalRateLimit(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)))
	}

	s := &Server{
		echo:      e,
		users:     opts.Users,
		auth:      opts.Auth,
		tasks:     opts.Tasks,
		staticDir: opts.StaticDir,
	}
	s.registerRoutes()
	return s
}

// Handler exposes the router for an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) registerRoutes() {
	requireIdentity := RequireIdentity(s.auth)
	adminOnly := RequireRole(entities.RoleAdmin)

	api := s.echo.Group("/api")
	api.GET("/healthz", s.handleHealth)

	auth := api.Group("/auth")
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)
	auth.GET("/profile", s.handleProfile, requireIdentity)

	users := api.Group("/users", requireIdentity)
	users.GET("", s.handleListMembers, adminOnly)
	users.GET("/:id", s.handleGetMember)
	users.DELETE("/:id", s.handleDeleteMember, adminOnly)

	tasks := api.Group("/tasks", requireIdentity)
	tasks.GET("", s.handleListTasks)
	tasks.GET("/dashboard", s.handleDashboard)
	tasks.GET("/:id", s.handleGetTask)
	tasks.POST("", s.handleCreateTask, adminOnly)
	tasks.PUT("/:id/status", s.handleUpdateTaskStatus)
	tasks.PUT("/:id/todo", s.handleUpdateTaskChecklist)
	tasks.DELETE("/:id", s.handleDeleteTask, adminOnly)

	s.mountStatic()
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// ipExtractor resolves c.RealIP(). Forwarding headers count only when the
// peer is a configured proxy.
func ipExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			log.Printf("ignoring trusted proxy %q: %v", cidr, err)
			continue
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}

// globalRateLimit rejects requests once the shared token bucket is empty.
func globalRateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
