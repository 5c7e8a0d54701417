package main

import (
	"log"
	"time"

	"movie_ratings_api/api"
	"movie_ratings_api/configs"
	"movie_ratings_api/db"
	"movie_ratings_api/db/redis"
	"movie_ratings_api/internal/graph"
	"movie_ratings_api/internal/handler"
	"movie_ratings_api/internal/repository"
	"movie_ratings_api/internal/service"
	"movie_ratings_api/internal/tmdb"

	"github.com/getsentry/sentry-go"
)

func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		if db.IsConnectionNotAcceptingError(err) {
			log.Fatalf("database is not accepting connections: %s", err)
		}
		log.Fatalf("could not initialize database connection: %s", err)
	}
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("could not migrate database: %s", err)
	}

	tmdbClient := tmdb.NewClient(configs.GetConfigs().TmdbBaseUrl, configs.GetConfigs().TmdbApiKey)

	userRep := repository.NewUserRepository(database.GetDB())
	movieRep := repository.NewMovieRepository(database.GetDB())
	ratingRep := repository.NewRatingRepository(database.GetDB())
	reviewRep := repository.NewReviewRepository(database.GetDB())

	userSvc := service.NewUserService(userRep)
	movieSvc := service.NewMovieService(movieRep, tmdbClient)
	ratingSvc := service.NewRatingService(ratingRep, movieSvc)
	reviewSvc := service.NewReviewService(reviewRep, movieSvc)

	schema, err := graph.NewSchema(&graph.Resolver{
		UserSvc:   userSvc,
		MovieSvc:  movieSvc,
		RatingSvc: ratingSvc,
		ReviewSvc: reviewSvc,
	})
	if err != nil {
		log.Fatalf("could not build graphql schema: %s", err)
	}

	graphqlHandler := handler.NewGraphQLHandler(schema)

	api.InitRouter(graphqlHandler)
	if err := api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
