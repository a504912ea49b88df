package server

import (
	"errors"
	"log"

	"chat-space-be/internal/bootstrap"
	"chat-space-be/internal/config"
	"chat-space-be/internal/pkg/serverutils"
	"chat-space-be/internal/service"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, image payloads ride in the JSON body
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)
	registerViews(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.MessageController.RegisterRoutes(api)
	c.AdminController.RegisterRoutes(api)
}

// registerViews wires the browser entry points. /chat and /admin require a
// session; /admin additionally re-checks the stored role on every load and
// bounces regular users back to the chat view. Authenticated users visiting
// the auth pages are sent straight to /chat.
func registerViews(app *fiber.App, c *bootstrap.Container) {
	app.Static("/", "./web")

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Redirect("/chat", fiber.StatusFound)
	})

	app.Get("/login", redirectIfAuthenticated, func(ctx *fiber.Ctx) error {
		return ctx.SendFile("./web/login.html")
	})
	app.Get("/signup", redirectIfAuthenticated, func(ctx *fiber.Ctx) error {
		return ctx.SendFile("./web/signup.html")
	})

	app.Get("/chat", serverutils.ViewSessionGate, func(ctx *fiber.Ctx) error {
		return ctx.SendFile("./web/chat.html")
	})

	app.Get("/admin", serverutils.ViewSessionGate, func(ctx *fiber.Ctx) error {
		raw, _ := ctx.Locals("user_id").(string)
		userId, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Redirect("/login", fiber.StatusFound)
		}
		// The stored role decides, not the token claim.
		if err := c.AuthService.RequireAdmin(ctx.Context(), userId); err != nil {
			if errors.Is(err, service.ErrForbidden) {
				return ctx.Redirect("/chat", fiber.StatusFound)
			}
			return ctx.Redirect("/login", fiber.StatusFound)
		}
		return ctx.SendFile("./web/admin.html")
	})
}

func redirectIfAuthenticated(ctx *fiber.Ctx) error {
	tokenStr := ctx.Cookies(serverutils.AuthCookieName)
	if tokenStr == "" {
		return ctx.Next()
	}
	if _, err := serverutils.ParseSessionToken(tokenStr); err != nil {
		return ctx.Next()
	}
	return ctx.Redirect("/chat", fiber.StatusFound)
}
