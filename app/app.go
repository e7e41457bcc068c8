// Package app drives one console session: menu, selection, fetch, render.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"weather-cli/cities"
	"weather-cli/datasource"
	"weather-cli/forecast"
	"weather-cli/render"
)

var (
	// ErrSelectionNotInteger is returned for menu input that is not a whole number.
	ErrSelectionNotInteger = errors.New("selection is not an integer")
	// ErrNoSelection is returned when input ends before a valid selection was read.
	ErrNoSelection = errors.New("no city selected")
)

// App wires the registry, the forecast source and the console streams together
type App struct {
	registry *cities.Registry
	source   datasource.ForecastSource
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
}

// New creates an App reading selections from in and writing to out
func New(registry *cities.Registry, source datasource.ForecastSource, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		registry: registry,
		source:   source,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// Run performs exactly one select -> fetch -> extract -> render pass.
// Only input validation is retried; every other failure is returned.
func (a *App) Run(ctx context.Context) error {
	city, err := a.SelectCity()
	if err != nil {
		return err
	}
	a.logger.Info("city selected", zap.String("city", city.Name))

	doc, err := a.source.FetchForecast(ctx, city.Coordinates)
	if err != nil {
		var fetchErr *datasource.FetchFailedError
		if errors.As(err, &fetchErr) {
			fmt.Fprintf(a.out, "Request failed with status code %d...\n", fetchErr.StatusCode)
		}
		a.logger.Error("forecast fetch failed",
			zap.String("city", city.Name),
			zap.String("source", a.source.Name()),
			zap.Error(err))
		return fmt.Errorf("failed to fetch forecast for %s: %w", city.Name, err)
	}

	if now, err := forecast.CurrentTime(doc); err == nil {
		a.logger.Debug("forecast received", zap.String("current_time", now))
	}

	summary, err := forecast.CurrentSummary(doc)
	if err != nil {
		return err
	}
	cols, err := forecast.Extract(doc)
	if err != nil {
		return err
	}
	return render.Render(a.out, summary, cols)
}

// PrintMenu writes the numbered city list
func (a *App) PrintMenu() {
	fmt.Fprintln(a.out, "Select a city:")
	for i, c := range a.registry.Cities() {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, c.Name)
	}
}

// SelectCity prints the menu and reads lines until one resolves to a city.
func (a *App) SelectCity() (cities.City, error) {
	a.PrintMenu()
	for a.in.Scan() {
		city, err := a.resolve(a.in.Text())
		if err == nil {
			return city, nil
		}
		a.logger.Debug("rejected selection", zap.String("input", a.in.Text()), zap.Error(err))
		fmt.Fprintln(a.out, "Invalid selection...")
	}
	if err := a.in.Err(); err != nil {
		return cities.City{}, fmt.Errorf("failed to read selection: %w", err)
	}
	return cities.City{}, ErrNoSelection
}

func (a *App) resolve(line string) (cities.City, error) {
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return cities.City{}, fmt.Errorf("%w: %q", ErrSelectionNotInteger, line)
	}
	return a.registry.Resolve(index)
}
