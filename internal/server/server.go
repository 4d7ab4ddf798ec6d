// Package server exposes the REST API over Fiber. Handlers stay thin:
// they decode the request, call a service and encode the result, while
// the shared error handler maps service errors to HTTP status codes.
package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Properties *service.PropertyService
	Rooms      *service.RoomService
	Tenants    *service.TenantService
	Contracts  *service.ContractService
	Payments   *service.PaymentService
	Expenses   *service.ExpenseService
	Settings   *service.SettingsService
	Dashboard  *service.DashboardService
}

// Server holds the Fiber app and its dependencies.
type Server struct {
	app        *fiber.App
	jwtManager *auth.JWTManager
	svc        Services
}

// New builds the Fiber application with all routes registered.
func New(jwtManager *auth.JWTManager, svc Services) *Server {
	s := &Server{
		jwtManager: jwtManager,
		svc:        svc,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "rentbase",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(requestLogger())
	s.app.Use(httpMetrics())

	s.registerRoutes()
	return s
}

// Listen starts serving on the given address, blocking until shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api")

	api.Post("/auth/login", s.handleLogin)

	// Everything below requires a valid bearer token.
	api.Use(s.requireAuth)

	api.Get("/auth/me", s.handleMe)

	api.Post("/users", s.handleCreateUser)
	api.Get("/users", s.handleListUsers)
	api.Get("/users/:id", s.handleGetUser)
	api.Patch("/users/:id", s.handleUpdateUser)
	api.Delete("/users/:id", s.handleDeleteUser)

	api.Post("/properties", s.handleCreateProperty)
	api.Get("/properties", s.handleListProperties)
	api.Get("/properties/:id", s.handleGetProperty)
	api.Patch("/properties/:id", s.handleUpdateProperty)
	api.Delete("/properties/:id", s.handleDeleteProperty)

	api.Post("/rooms", s.handleCreateRoom)
	api.Get("/rooms", s.handleListRooms)
	api.Get("/rooms/:id", s.handleGetRoom)
	api.Patch("/rooms/:id", s.handleUpdateRoom)
	api.Delete("/rooms/:id", s.handleDeleteRoom)

	api.Post("/tenants", s.handleCreateTenant)
	api.Get("/tenants", s.handleListTenants)
	api.Get("/tenants/:id", s.handleGetTenant)
	api.Patch("/tenants/:id", s.handleUpdateTenant)
	api.Delete("/tenants/:id", s.handleDeactivateTenant)

	api.Post("/contracts", s.handleCreateContract)
	api.Get("/contracts", s.handleListContracts)
	api.Get("/contracts/:id", s.handleGetContract)
	api.Patch("/contracts/:id", s.handleUpdateContract)
	api.Post("/contracts/:id/settlement/calculate", s.handleCalculateSettlement)

	api.Post("/payments", s.handleCreatePayment)
	api.Get("/payments", s.handleListPayments)
	api.Get("/payments/pending", s.handlePendingPayments)
	api.Get("/payments/:id", s.handleGetPayment)
	api.Patch("/payments/:id", s.handleUpdatePayment)

	api.Post("/expenses", s.handleCreateExpense)
	api.Get("/expenses", s.handleListExpenses)
	api.Get("/expenses/:id", s.handleGetExpense)
	api.Patch("/expenses/:id", s.handleUpdateExpense)
	api.Delete("/expenses/:id", s.handleDeleteExpense)

	api.Get("/settings", s.handleGetSettings)
	api.Patch("/settings", s.handleUpdateSettings)

	api.Get("/dashboard/stats", s.handleDashboardStats)
}

// statusForError maps service and auth errors to HTTP status codes.
func statusForError(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrBadRequest),
		errors.Is(err, auth.ErrWeakPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, auth.ErrRoleNotAllowed),
		errors.Is(err, auth.ErrInactiveUser):
		return fiber.StatusForbidden
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler translates service and auth errors into HTTP responses.
func errorHandler(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(status).JSON(fiber.Map{"error": fiberErr.Message})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
