package graph

import (
	"fmt"
	"strconv"

	errorHandler "movie_ratings_api/pkg/error"

	"github.com/graphql-go/graphql"
)

func intArg(p graphql.ResolveParams, name string, def int) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return def
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// idArg returns the raw ID argument as a string; ids may arrive as strings or
// numbers depending on how the client passes variables.
func idArg(p graphql.ResolveParams, name string) string {
	raw, ok := p.Args[name]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}

// numericIdArg is idArg for entities that never use the external tmdb- form.
func numericIdArg(p graphql.ResolveParams, name string) (int64, error) {
	id, err := strconv.ParseInt(idArg(p, name), 10, 64)
	if err != nil {
		return 0, errorHandler.BadRequest(fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}
