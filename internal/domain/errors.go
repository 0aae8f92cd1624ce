package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// WeatherFetchErr represents a failed request for weather conditions.
// StatusCode is zero when the request never got a response.
type WeatherFetchErr struct {
	StatusCode int
	cause      error
}

// NewWeatherFetchErr creates a new WeatherFetchErr for the given status and optional cause.
func NewWeatherFetchErr(statusCode int, cause error) *WeatherFetchErr {
	return &WeatherFetchErr{
		StatusCode: statusCode,
		cause:      cause,
	}
}

// Error returns the error message.
func (e *WeatherFetchErr) Error() string {
	if e.StatusCode == 0 && e.cause != nil {
		return fmt.Sprintf("weather data request failed: %v", e.cause)
	}
	return fmt.Sprintf("weather data request failed with status: %d", e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *WeatherFetchErr) Unwrap() error {
	return e.cause
}
