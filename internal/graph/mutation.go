package graph

import (
	"movie_ratings_api/model"
	errorHandler "movie_ratings_api/pkg/error"
	"movie_ratings_api/pkg/response"

	"github.com/graphql-go/graphql"
)

func (b *schemaBuilder) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: b.authType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.UserSvc.Login(stringArg(p, "username"), stringArg(p, "password"))
				},
			},
			"addUser": &graphql.Field{
				Type: b.authType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.r.UserSvc.Signup(stringArg(p, "username"), stringArg(p, "password"))
				},
			},
			"addMovie": &graphql.Field{
				Type: b.movieType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"releaseYear": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"imageSrc":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"tmdbId":      &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims := UserFrom(p.Context)
					if claims == nil || !claims.IsAdmin {
						return nil, errorHandler.Forbidden(response.AdminsOnly)
					}

					data := model.MovieCreateData{
						Title:       stringArg(p, "title"),
						Description: stringArg(p, "description"),
						ReleaseYear: intArg(p, "releaseYear", 0),
						ImageSrc:    stringArg(p, "imageSrc"),
					}
					if tmdbId, ok := p.Args["tmdbId"].(int); ok {
						id := int64(tmdbId)
						data.TmdbId = &id
					}
					return b.r.MovieSvc.AddMovie(p.Context, data)
				},
			},
			"addRating": &graphql.Field{
				Type: b.ratingType,
				Args: graphql.FieldConfigArgument{
					"movieId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"rating":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					return b.r.RatingSvc.AddRating(p.Context, claims.UserId, idArg(p, "movieId"), intArg(p, "rating", 0))
				},
			},
			"updateRating": &graphql.Field{
				Type: b.ratingType,
				Args: graphql.FieldConfigArgument{
					"ratingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"rating":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					ratingId, err := numericIdArg(p, "ratingId")
					if err != nil {
						return nil, err
					}
					return b.r.RatingSvc.UpdateRating(claims.UserId, ratingId, intArg(p, "rating", 0))
				},
			},
			"deleteRating": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"ratingId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					ratingId, err := numericIdArg(p, "ratingId")
					if err != nil {
						return nil, err
					}
					if err := b.r.RatingSvc.DeleteRating(claims.UserId, ratingId); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"addReview": &graphql.Field{
				Type: b.reviewType,
				Args: graphql.FieldConfigArgument{
					"movieId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					return b.r.ReviewSvc.AddReview(p.Context, claims.UserId, idArg(p, "movieId"), stringArg(p, "content"))
				},
			},
			"updateReview": &graphql.Field{
				Type: b.reviewType,
				Args: graphql.FieldConfigArgument{
					"reviewId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					reviewId, err := numericIdArg(p, "reviewId")
					if err != nil {
						return nil, err
					}
					return b.r.ReviewSvc.UpdateReview(claims.UserId, reviewId, stringArg(p, "content"))
				},
			},
			"deleteReview": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"reviewId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireUser(p.Context)
					if err != nil {
						return nil, err
					}
					reviewId, err := numericIdArg(p, "reviewId")
					if err != nil {
						return nil, err
					}
					if err := b.r.ReviewSvc.DeleteReview(claims.UserId, reviewId); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})
}
