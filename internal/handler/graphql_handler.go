package handler

import (
	"movie_ratings_api/api/middleware"
	"movie_ratings_api/internal/graph"
	"movie_ratings_api/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

type IGraphQLHandler interface {
	HandleGraphQL(c *fiber.Ctx) error
}

type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
	}
}

//------------------------------------------
//------------------------------------------

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// HandleGraphQL executes a graphql request. Operation failures travel in the
// errors array of a 200 response, only a malformed body is an http error.
func (h *GraphQLHandler) HandleGraphQL(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	ctx := graph.WithUser(c.UserContext(), middleware.UserFromLocals(c))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	return c.Status(fiber.StatusOK).JSON(result)
}
