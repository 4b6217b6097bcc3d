// Package analysis implements the extreme-wind, reliability, and power
// output analyses over a capacity-factor series.
package analysis

import "fmt"

// ConfigError reports an invalid analysis parameter, such as an empty
// threshold set or a low threshold at or above the high threshold.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid analysis configuration: %s", e.Msg)
}

// DataError reports a series that cannot support the requested
// computation, such as one with zero valid samples where a probability
// denominator is needed.
type DataError struct {
	Country string
	Msg     string
}

func (e *DataError) Error() string {
	if e.Country != "" {
		return fmt.Sprintf("insufficient data for %s: %s", e.Country, e.Msg)
	}
	return fmt.Sprintf("insufficient data: %s", e.Msg)
}
