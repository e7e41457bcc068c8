package datasource

import "fmt"

// FetchFailedError is returned when the forecast API answers with a status other than 200.
type FetchFailedError struct {
	StatusCode int
	Body       string
}

func (e *FetchFailedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned non-200 status: %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned non-200 status: %d: %s", e.StatusCode, e.Body)
}
