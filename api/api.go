package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"movie_ratings_api/api/middleware"
	"movie_ratings_api/configs"
	"movie_ratings_api/internal/handler"
	"movie_ratings_api/pkg/response"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

var router *fiber.App

func InitRouter(graphqlHandler handler.IGraphQLHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Get("/", HealthCheck)
	router.Post("/graphql", middleware.AuthMiddleware, graphqlHandler.HandleGraphQL)
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		// handlers read c.UserContext(), so downstream db/upstream calls
		// observe the deadline
		c.SetUserContext(ctx)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck is the plain status probe. It stays CORS-open regardless of the
// configured origins.
func HealthCheck(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return response.ResponseHealth(c)
}
