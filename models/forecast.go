package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a forecast document lacks an expected
// field or carries hourly arrays of different lengths.
var ErrMalformedResponse = errors.New("malformed forecast response")

// DayFlag is the current.is_day value. The API sends 0/1, fixtures may use booleans.
type DayFlag bool

// UnmarshalJSON accepts both numeric and boolean encodings
func (d *DayFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*d = DayFlag(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("is_day must be a boolean or a number, got %s", string(data))
	}
	*d = n != 0
	return nil
}

// CurrentConditions holds the "current" block of a forecast document
type CurrentConditions struct {
	Time  *int64   `json:"time"`  // unix seconds
	IsDay *DayFlag `json:"is_day"`
}

// HourlySeries holds the index-aligned hourly arrays. Readings keep their JSON
// literal so the display form matches what the API sent.
type HourlySeries struct {
	Time                []int64       `json:"time"`
	Temperature2m       []json.Number `json:"temperature_2m"`
	RelativeHumidity2m  []json.Number `json:"relative_humidity_2m"`
	ApparentTemperature []json.Number `json:"apparent_temperature"`
}

// HourlyUnits maps each hourly field to its unit string
type HourlyUnits struct {
	Time                *string `json:"time,omitempty"`
	Temperature2m       *string `json:"temperature_2m"`
	RelativeHumidity2m  *string `json:"relative_humidity_2m"`
	ApparentTemperature *string `json:"apparent_temperature"`
}

// ForecastDocument is the result of one forecast API call. Every field is
// optional at the JSON level; Validate reports the ones that are missing.
type ForecastDocument struct {
	Latitude             float64            `json:"latitude,omitempty"`
	Longitude            float64            `json:"longitude,omitempty"`
	Timezone             string             `json:"timezone,omitempty"`
	TimezoneAbbreviation *string            `json:"timezone_abbreviation"`
	Current              *CurrentConditions `json:"current"`
	Hourly               *HourlySeries      `json:"hourly"`
	HourlyUnits          *HourlyUnits       `json:"hourly_units"`
}

// ParseForecast decodes and validates a forecast document
func ParseForecast(data []byte) (*ForecastDocument, error) {
	var doc ForecastDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedResponse, field)
}

// Validate checks that every field the extractors read is present and that
// all hourly arrays have the same length as hourly.time.
func (d *ForecastDocument) Validate() error {
	if d == nil {
		return missing("document")
	}
	if d.Current == nil {
		return missing("current")
	}
	if d.Current.Time == nil {
		return missing("current.time")
	}
	if d.Current.IsDay == nil {
		return missing("current.is_day")
	}
	if d.TimezoneAbbreviation == nil {
		return missing("timezone_abbreviation")
	}
	if d.Hourly == nil {
		return missing("hourly")
	}
	if d.HourlyUnits == nil {
		return missing("hourly_units")
	}

	series := []struct {
		name   string
		length int
		isNil  bool
		unit   *string
	}{
		{"temperature_2m", len(d.Hourly.Temperature2m), d.Hourly.Temperature2m == nil, d.HourlyUnits.Temperature2m},
		{"relative_humidity_2m", len(d.Hourly.RelativeHumidity2m), d.Hourly.RelativeHumidity2m == nil, d.HourlyUnits.RelativeHumidity2m},
		{"apparent_temperature", len(d.Hourly.ApparentTemperature), d.Hourly.ApparentTemperature == nil, d.HourlyUnits.ApparentTemperature},
	}

	if d.Hourly.Time == nil {
		return missing("hourly.time")
	}
	for _, s := range series {
		if s.isNil {
			return missing("hourly." + s.name)
		}
		if s.unit == nil {
			return missing("hourly_units." + s.name)
		}
		if s.length != len(d.Hourly.Time) {
			return fmt.Errorf("%w: hourly.%s has %d entries, hourly.time has %d",
				ErrMalformedResponse, s.name, s.length, len(d.Hourly.Time))
		}
	}
	return nil
}
