package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"latitude": 55.75,
	"longitude": 37.625,
	"timezone": "Europe/Moscow",
	"timezone_abbreviation": "MSK",
	"current": {"time": 0, "interval": 900, "is_day": 1},
	"hourly_units": {"time": "unixtime", "temperature_2m": "°C", "relative_humidity_2m": "%", "apparent_temperature": "°C"},
	"hourly": {
		"time": [0, 3600],
		"temperature_2m": [10, 12.5],
		"relative_humidity_2m": [50, 55],
		"apparent_temperature": [9, 11.0]
	}
}`

func TestParseForecast(t *testing.T) {
	doc, err := ParseForecast([]byte(fixture))
	require.NoError(t, err)

	assert.Equal(t, "MSK", *doc.TimezoneAbbreviation)
	assert.Equal(t, int64(0), *doc.Current.Time)
	assert.True(t, bool(*doc.Current.IsDay))
	assert.Equal(t, []int64{0, 3600}, doc.Hourly.Time)
	assert.Equal(t, "12.5", doc.Hourly.Temperature2m[1].String())
	assert.Equal(t, "11.0", doc.Hourly.ApparentTemperature[1].String())
	assert.Equal(t, "%", *doc.HourlyUnits.RelativeHumidity2m)
}

func TestDayFlag(t *testing.T) {
	cases := map[string]bool{
		`{"time": 1, "is_day": true}`:  true,
		`{"time": 1, "is_day": false}`: false,
		`{"time": 1, "is_day": 1}`:     true,
		`{"time": 1, "is_day": 0}`:     false,
	}
	for in, want := range cases {
		var c CurrentConditions
		require.NoError(t, json.Unmarshal([]byte(in), &c), in)
		assert.Equal(t, want, bool(*c.IsDay), in)
	}

	var c CurrentConditions
	assert.Error(t, json.Unmarshal([]byte(`{"is_day": "yes"}`), &c))
}

func TestParseForecastMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{"current":`,
		"no current":        `{"timezone_abbreviation": "MSK", "hourly": {"time": []}, "hourly_units": {}}`,
		"no current.time":   `{"current": {"is_day": 1}, "timezone_abbreviation": "MSK"}`,
		"no current.is_day": `{"current": {"time": 0}, "timezone_abbreviation": "MSK"}`,
		"no tz abbrev":      `{"current": {"time": 0, "is_day": 1}}`,
		"no hourly":         `{"current": {"time": 0, "is_day": 1}, "timezone_abbreviation": "MSK", "hourly_units": {}}`,
		"no hourly units":   `{"current": {"time": 0, "is_day": 1}, "timezone_abbreviation": "MSK", "hourly": {"time": []}}`,
		"no humidity": `{"current": {"time": 0, "is_day": 1}, "timezone_abbreviation": "MSK",
			"hourly": {"time": [0], "temperature_2m": [1], "apparent_temperature": [1]},
			"hourly_units": {"temperature_2m": "°C", "relative_humidity_2m": "%", "apparent_temperature": "°C"}}`,
		"no humidity unit": `{"current": {"time": 0, "is_day": 1}, "timezone_abbreviation": "MSK",
			"hourly": {"time": [0], "temperature_2m": [1], "relative_humidity_2m": [1], "apparent_temperature": [1]},
			"hourly_units": {"temperature_2m": "°C", "apparent_temperature": "°C"}}`,
		"length mismatch": `{"current": {"time": 0, "is_day": 1}, "timezone_abbreviation": "MSK",
			"hourly": {"time": [0, 3600], "temperature_2m": [1, 2], "relative_humidity_2m": [1], "apparent_temperature": [1, 2]},
			"hourly_units": {"temperature_2m": "°C", "relative_humidity_2m": "%", "apparent_temperature": "°C"}}`,
	}
	for name, body := range cases {
		_, err := ParseForecast([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedResponse, name)
	}
}

func TestParseForecastVariableLength(t *testing.T) {
	body := `{"current": {"time": 0, "is_day": 0}, "timezone_abbreviation": "MSK",
		"hourly": {"time": [0, 3600, 7200], "temperature_2m": [1, 2, 3], "relative_humidity_2m": [4, 5, 6], "apparent_temperature": [7, 8, 9]},
		"hourly_units": {"temperature_2m": "°C", "relative_humidity_2m": "%", "apparent_temperature": "°C"}}`
	doc, err := ParseForecast([]byte(body))
	require.NoError(t, err)
	assert.Len(t, doc.Hourly.Time, 3)
	assert.False(t, bool(*doc.Current.IsDay))
}

func TestCoordinatesParams(t *testing.T) {
	c := NewCoordinates(56.736343, 37.162177)
	assert.Equal(t, "56.736343", c.LatitudeParam())
	assert.Equal(t, "37.162177", c.LongitudeParam())
	assert.Equal(t, "-1.500000", NewCoordinates(-1.5, 0).LatitudeParam())
}
