// Package forecast projects a forecast document into display strings.
package forecast

import (
	"encoding/json"
	"fmt"

	"weather-cli/models"
	"weather-cli/timefmt"
)

// NullReading is shown in place of a reading the API returned as null.
const NullReading = "n/a"

// Columns is the display row set: four index-aligned columns, one entry per
// hourly sample.
type Columns struct {
	Times                []string
	Temperatures         []string
	Humidity             []string
	ApparentTemperatures []string
}

// Len returns the number of rows
func (c *Columns) Len() int {
	return len(c.Times)
}

// Extract runs every hourly projection over a document
func Extract(doc *models.ForecastDocument) (*Columns, error) {
	times, err := HourlyTimes(doc)
	if err != nil {
		return nil, err
	}
	temps, err := HourlyTemperatures(doc)
	if err != nil {
		return nil, err
	}
	humidity, err := HourlyHumidity(doc)
	if err != nil {
		return nil, err
	}
	apparent, err := HourlyApparentTemperature(doc)
	if err != nil {
		return nil, err
	}
	return &Columns{
		Times:                times,
		Temperatures:         temps,
		Humidity:             humidity,
		ApparentTemperatures: apparent,
	}, nil
}

// CurrentSummary renders "(Day|Night) DD.MM.YYYY HH:MM:SS <tz abbreviation>"
func CurrentSummary(doc *models.ForecastDocument) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	label := "Night"
	if *doc.Current.IsDay {
		label = "Day"
	}
	return fmt.Sprintf("(%s) %s %s",
		label,
		timefmt.FormatTimestamp(*doc.Current.Time, false),
		*doc.TimezoneAbbreviation), nil
}

// CurrentTime renders the current timestamp as HH:MM
func CurrentTime(doc *models.ForecastDocument) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	return timefmt.FormatTimestamp(*doc.Current.Time, true), nil
}

// HourlyTimes renders every hourly.time entry as HH:MM, in order
func HourlyTimes(doc *models.ForecastDocument) ([]string, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, len(doc.Hourly.Time))
	for i, ts := range doc.Hourly.Time {
		out[i] = timefmt.FormatTimestamp(ts, true)
	}
	return out, nil
}

// HourlyTemperatures renders hourly.temperature_2m with its unit
func HourlyTemperatures(doc *models.ForecastDocument) ([]string, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return withUnit(doc.Hourly.Temperature2m, *doc.HourlyUnits.Temperature2m), nil
}

// HourlyHumidity renders hourly.relative_humidity_2m with its unit
func HourlyHumidity(doc *models.ForecastDocument) ([]string, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return withUnit(doc.Hourly.RelativeHumidity2m, *doc.HourlyUnits.RelativeHumidity2m), nil
}

// HourlyApparentTemperature renders hourly.apparent_temperature with its unit
func HourlyApparentTemperature(doc *models.ForecastDocument) ([]string, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return withUnit(doc.Hourly.ApparentTemperature, *doc.HourlyUnits.ApparentTemperature), nil
}

func withUnit(values []json.Number, unit string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		s := v.String()
		if s == "" {
			s = NullReading
		}
		out[i] = s + " " + unit
	}
	return out
}
