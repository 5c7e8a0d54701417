package middleware

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"movie_ratings_api/internal/graph"
	"movie_ratings_api/util"

	"github.com/gofiber/fiber/v2"
)

// UserDataKey is the locals key the decoded identity is stored under.
const UserDataKey = "jwtUserData"

// AuthMiddleware is the auth gate. It is fail-open: a missing, malformed or
// invalid token makes the request anonymous instead of rejecting it. The
// operations that need identity reject inside the resolver layer.
func AuthMiddleware(c *fiber.Ctx) error {
	body := peekBody(c)

	// named public operations never carry identity
	if graph.IsPublicOperation(body.OperationName) {
		return c.Next()
	}

	token := extractToken(c, body)
	if token == "" {
		return c.Next()
	}

	claims, err := util.VerifyToken(token)
	if err != nil {
		log.Println("Invalid token:", err)
		return c.Next()
	}

	c.Locals(UserDataKey, claims)
	return c.Next()
}

// UserFromLocals reads the identity the gate attached, nil means anonymous.
func UserFromLocals(c *fiber.Ctx) *util.AuthClaims {
	claims, _ := c.Locals(UserDataKey).(*util.AuthClaims)
	return claims
}

//------------------------------------------
//------------------------------------------

type requestBody struct {
	OperationName string `json:"operationName"`
	Token         string `json:"token"`
}

func peekBody(c *fiber.Ctx) requestBody {
	var body requestBody
	// ignore parse failures, the graphql handler reports malformed bodies
	_ = json.Unmarshal(c.Body(), &body)
	return body
}

// extractToken prefers the Authorization header; the query param and body
// field fallbacks are legacy client behavior.
func extractToken(c *fiber.Ctx, body requestBody) string {
	header := c.Get(fiber.HeaderAuthorization, "")
	if header != "" {
		parts := strings.Split(header, " ")
		return strings.TrimSpace(parts[len(parts)-1])
	}
	if token := c.Query("token", ""); token != "" {
		return token
	}
	return body.Token
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
