package graph

import (
	"movie_ratings_api/internal/service"

	"github.com/graphql-go/graphql"
)

// Resolver composes the services behind the graphql operations. It is passed
// by value into every resolve closure, no globals.
type Resolver struct {
	UserSvc   service.IUserService
	MovieSvc  service.IMovieService
	RatingSvc service.IRatingService
	ReviewSvc service.IReviewService
}

// NewSchema builds the wire contract. Type and field names mirror the schema
// the web client was written against, changing them breaks the client.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	b := &schemaBuilder{r: r}
	b.buildTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}

type schemaBuilder struct {
	r *Resolver

	userType             *graphql.Object
	movieType            *graphql.Object
	ratingType           *graphql.Object
	reviewType           *graphql.Object
	authType             *graphql.Object
	searchResultType     *graphql.Object
	tmdbMovieType        *graphql.Object
	tmdbReviewType       *graphql.Object
	paginatedRatingsType *graphql.Object
	paginatedReviewsType *graphql.Object
}
