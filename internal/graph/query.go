package graph

import (
	"github.com/graphql-go/graphql"
)

func (b *schemaBuilder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: b.userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					return b.r.UserSvc.GetUser(claims.UserId)
				},
			},
			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}
					userId, err := numericIdArg(p, "id")
					if err != nil {
						return nil, err
					}
					return b.r.UserSvc.GetUser(userId)
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(b.userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := requireUser(p.Context); err != nil {
						return nil, err
					}
					return b.r.UserSvc.GetUsers()
				},
			},
			"movie": &graphql.Field{
				Type: b.movieType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.GetMovie(p.Context, idArg(p, "id"))
				},
			},
			"movies": &graphql.Field{
				Type: graphql.NewList(b.movieType),
				Args: graphql.FieldConfigArgument{
					"page":  &graphql.ArgumentConfig{Type: graphql.Int},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					// limit is part of the contract but the browse page is
					// popular-backed with a fixed page size
					return b.r.MovieSvc.GetMovies(p.Context, intArg(p, "page", 1))
				},
			},
			"moviesByTitle": &graphql.Field{
				Type: graphql.NewList(b.movieType),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.MoviesByTitle(stringArg(p, "title"))
				},
			},
			"tmdbMovieDetails": &graphql.Field{
				Type: b.tmdbMovieType,
				Args: graphql.FieldConfigArgument{
					"tmdbId": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.TmdbMovieDetails(p.Context, int64(intArg(p, "tmdbId", 0)))
				},
			},
			"searchMovies": &graphql.Field{
				Type: graphql.NewNonNull(b.searchResultType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"page":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.SearchMovies(p.Context, stringArg(p, "query"), intArg(p, "page", 1))
				},
			},
			"getRecommendations": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(b.movieType)),
				Args: graphql.FieldConfigArgument{
					"tmdbId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"page":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.GetRecommendations(p.Context, int64(intArg(p, "tmdbId", 0)), intArg(p, "page", 1))
				},
			},
			"getPopularMovies": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(b.movieType)),
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.MovieSvc.GetPopularMovies(p.Context, intArg(p, "page", 1))
				},
			},
		},
	})
}
