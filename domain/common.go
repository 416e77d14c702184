package domain

import "errors"

const DateLayout = "2006-01-02"

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessHealthCheck   = "service is healthy"

	ErrEmptyPayload       = errors.New("payload must not be empty")
	ErrInvalidDay         = errors.New("day must be formatted as YYYY-MM-DD")
	ErrWeatherUnavailable = errors.New("weather provider unavailable")
	ErrCompositeItem      = errors.New("composite items are tracked through their parts")
)
