package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"weather-cli/models"
)

const (
	// ForecastTimezone is the region the API localises its response to
	ForecastTimezone = "Europe/Moscow"
	// ForecastDays is the forecast window requested
	ForecastDays = 1

	hourlyFields = "temperature_2m,relative_humidity_2m,apparent_temperature"

	// maxErrorBody caps how much of a failed response is kept on the error
	maxErrorBody = 512
)

// OpenMeteoSource implements ForecastSource against the Open-Meteo forecast API
type OpenMeteoSource struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure OpenMeteoSource implements ForecastSource
var _ ForecastSource = (*OpenMeteoSource)(nil)

// NewOpenMeteoSource creates a new Open-Meteo forecast source
func NewOpenMeteoSource(config *Config, logger *zap.Logger) *OpenMeteoSource {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenMeteoSource{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger.Named("open-meteo"),
	}
}

// Name returns the provider name
func (o *OpenMeteoSource) Name() string {
	return "Open-Meteo"
}

// RequestURL builds the forecast URL for the given coordinates
func (o *OpenMeteoSource) RequestURL(coordinates models.Coordinates) (string, error) {
	u, err := url.Parse(o.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", o.baseURL, err)
	}

	params := url.Values{}
	params.Set("latitude", coordinates.LatitudeParam())
	params.Set("longitude", coordinates.LongitudeParam())
	params.Set("current", "is_day")
	params.Set("hourly", hourlyFields)
	params.Set("timeformat", "unixtime")
	params.Set("timezone", ForecastTimezone)
	params.Set("forecast_days", fmt.Sprintf("%d", ForecastDays))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// FetchForecast performs one GET and parses the body into a validated document.
// A non-200 status is returned as *FetchFailedError.
func (o *OpenMeteoSource) FetchForecast(ctx context.Context, coordinates models.Coordinates) (*models.ForecastDocument, error) {
	// Build URL
	apiURL, err := o.RequestURL(coordinates)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("requesting forecast", zap.String("url", apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	start := time.Now()
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	o.logger.Debug("forecast response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchFailedError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Read the response body
	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := models.ParseForecast(rawData)
	if err != nil {
		o.logger.Warn("unusable forecast response", zap.Error(err), zap.Int("bytes", len(rawData)))
		return nil, err
	}
	return doc, nil
}
