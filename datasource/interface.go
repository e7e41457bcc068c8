package datasource

import (
	"context"

	"weather-cli/models"
)

//go:generate mockgen -destination=../mocks/mock_forecast_source.go -package=mocks weather-cli/datasource ForecastSource

// ForecastSource is an interface for services that can fetch a forecast document
type ForecastSource interface {
	// FetchForecast fetches the current conditions and hourly series for a location
	FetchForecast(ctx context.Context, coordinates models.Coordinates) (*models.ForecastDocument, error)

	// Name returns the source's name
	Name() string
}
