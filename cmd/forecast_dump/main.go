package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"weather-cli/cities"
	"weather-cli/datasource"
)

var city = flag.String("city", "Moscow", "Name of a city from the registry")

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := datasource.LoadConfig(".env")
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	registry := cities.Default()
	c, ok := registry.Lookup(*city)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown city %q. Known cities:\n", *city)
		for _, known := range registry.Cities() {
			fmt.Fprintf(os.Stderr, "  %s\n", known.Name)
		}
		os.Exit(1)
	}

	source := datasource.NewOpenMeteoSource(config, logger)
	doc, err := source.FetchForecast(context.Background(), c.Coordinates)
	if err != nil {
		logger.Fatal("failed to fetch forecast",
			zap.String("city", c.Name),
			zap.Float64("latitude", c.Coordinates.Latitude),
			zap.Float64("longitude", c.Coordinates.Longitude),
			zap.Error(err))
	}

	// Pretty print the result
	prettyJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode forecast", zap.Error(err))
	}
	fmt.Printf("Forecast for %s:\n%s\n", c.Name, string(prettyJSON))
}
