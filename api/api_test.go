package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie_ratings_api/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeHandler records what the router hands the graphql handler.
type probeHandler struct {
	hasDeadline bool
}

func (h *probeHandler) HandleGraphQL(c *fiber.Ctx) error {
	_, h.hasDeadline = c.UserContext().Deadline()
	return c.SendString("ok")
}

func TestHealthCheck(t *testing.T) {
	InitRouter(&probeHandler{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := router.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var health response.HealthModel
	require.NoError(t, json.Unmarshal(raw, &health))
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Timestamp)
}

// the request timeout must reach the graphql handler's context
func TestGraphqlRequestCarriesDeadline(t *testing.T) {
	probe := &probeHandler{}
	InitRouter(probe)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ ping }"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := router.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, probe.hasDeadline)
}
