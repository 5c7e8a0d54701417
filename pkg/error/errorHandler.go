package error

import (
	"log"

	"movie_ratings_api/configs"

	"github.com/getsentry/sentry-go"
)

func SaveError(message string, err error) {
	if configs.GetConfigs().PrintErrors {
		log.Println(message)
	}

	if err == nil {
		sentry.CaptureMessage(message)
	} else {
		sentry.CaptureException(err)
	}
}
