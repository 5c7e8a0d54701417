package graph

import "slices"

// PublicOperations lists the named operations the browse/search pages issue
// without a session. The auth gate skips token handling for these entirely,
// so they always execute as anonymous.
var PublicOperations = []string{
	"GetMovie",
	"movie",
	"GetMovies",
	"SearchMovies",
	"GetPopularMovies",
	"tmdbMovieDetails",
}

func IsPublicOperation(operationName string) bool {
	return slices.Contains(PublicOperations, operationName)
}
