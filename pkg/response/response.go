package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type ResponseErrorModel struct {
	Code         int         `json:"code"`
	ErrorMessage interface{} `json:"errorMessage"`
}

type HealthModel struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func ResponseError(c *fiber.Ctx, err interface{}, code int) error {
	response := ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	}

	return c.Status(code).JSON(response)
}

func ResponseHealth(c *fiber.Ctx) error {
	response := HealthModel{
		Status:    "ok",
		Message:   "API is working",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
