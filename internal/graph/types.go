package graph

import (
	"time"

	"movie_ratings_api/model"

	"github.com/graphql-go/graphql"
)

// buildTypes wires the object types. Cycles (User -> Rating -> User) are
// broken with field thunks.
func (b *schemaBuilder) buildTypes() {
	b.ratingType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Rating",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"rating":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"userId":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"movieId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"user":    &graphql.Field{Type: b.userType},
				"movie":   &graphql.Field{Type: b.movieType},
				"createdAt": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						if r := sourceRating(p.Source); r != nil {
							return formatTime(r.CreatedAt), nil
						}
						return nil, nil
					},
				},
			}
		}),
	})

	b.reviewType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"userId":  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"movieId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"user":    &graphql.Field{Type: b.userType},
				"movie":   &graphql.Field{Type: b.movieType},
				"createdAt": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						if r := sourceReview(p.Source); r != nil {
							return formatTime(r.CreatedAt), nil
						}
						return nil, nil
					},
				},
			}
		}),
	})

	b.paginatedRatingsType = graphql.NewObject(graphql.ObjectConfig{
		Name: "PaginatedRatings",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"items":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(b.ratingType))},
				"totalPages":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"currentPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			}
		}),
	})

	b.paginatedReviewsType = graphql.NewObject(graphql.ObjectConfig{
		Name: "PaginatedReviews",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"items":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(b.reviewType))},
				"totalPages":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"currentPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			}
		}),
	})

	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"isAdmin":  &graphql.Field{Type: graphql.Boolean},
				"ratings": &graphql.Field{
					Type: b.paginatedRatingsType,
					Args: graphql.FieldConfigArgument{
						"page": &graphql.ArgumentConfig{Type: graphql.Int},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						if user == nil {
							return nil, nil
						}
						return b.r.UserSvc.GetUserRatings(user.Id, intArg(p, "page", 1))
					},
				},
				"reviews": &graphql.Field{
					Type: b.paginatedReviewsType,
					Args: graphql.FieldConfigArgument{
						"page": &graphql.ArgumentConfig{Type: graphql.Int},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						if user == nil {
							return nil, nil
						}
						return b.r.UserSvc.GetUserReviews(user.Id, intArg(p, "page", 1))
					},
				},
			}
		}),
	})

	b.movieType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"title":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"description":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"releaseYear":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"imageSrc":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"averageRating": &graphql.Field{Type: graphql.Float},
				"tmdbId":        &graphql.Field{Type: graphql.Int},
				"voteCount":     &graphql.Field{Type: graphql.Int},
				"ratings":       &graphql.Field{Type: graphql.NewList(b.ratingType)},
				"reviews":       &graphql.Field{Type: graphql.NewList(b.reviewType)},
			}
		}),
	})

	b.authType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Auth",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"user":  &graphql.Field{Type: graphql.NewNonNull(b.userType)},
			}
		}),
	})

	b.searchResultType = graphql.NewObject(graphql.ObjectConfig{
		Name: "SearchResult",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"movies":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(b.movieType))},
				"totalPages":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"totalResults": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			}
		}),
	})

	b.tmdbReviewType = graphql.NewObject(graphql.ObjectConfig{
		Name: "TMDBReview",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"author":  &graphql.Field{Type: graphql.String},
			"content": &graphql.Field{Type: graphql.String},
		},
	})

	b.tmdbMovieType = graphql.NewObject(graphql.ObjectConfig{
		Name: "TMDBMovie",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"tmdbRating":  &graphql.Field{Type: graphql.Float},
				"tmdbReviews": &graphql.Field{Type: graphql.NewList(b.tmdbReviewType)},
				"voteCount":   &graphql.Field{Type: graphql.Int},
			}
		}),
	})
}

//------------------------------------------
//------------------------------------------

func sourceUser(src interface{}) *model.User {
	switch u := src.(type) {
	case *model.User:
		return u
	case model.User:
		return &u
	}
	return nil
}

func sourceRating(src interface{}) *model.Rating {
	switch r := src.(type) {
	case *model.Rating:
		return r
	case model.Rating:
		return &r
	}
	return nil
}

func sourceReview(src interface{}) *model.Review {
	switch r := src.(type) {
	case *model.Review:
		return r
	case model.Review:
		return &r
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
