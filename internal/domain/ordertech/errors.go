package ordertech

import "errors"

// Sync layer errors.
var (
	// ErrSettingsMissing indicates no OrderTech settings record is configured
	ErrSettingsMissing = errors.New("ordertech: settings missing")
	// ErrTokenMissing indicates the settings carry no bearer token yet
	ErrTokenMissing = errors.New("ordertech: bearer token missing")
	// ErrRemoteRequest indicates a transport-level failure calling the remote API
	ErrRemoteRequest = errors.New("ordertech: remote request failed")
	// ErrRemoteStatus indicates the remote API answered with an unexpected status
	ErrRemoteStatus = errors.New("ordertech: unexpected remote status")
	// ErrEmptyRestaurantList indicates the restaurant pull returned no entries
	ErrEmptyRestaurantList = errors.New("ordertech: empty restaurant list")
	// ErrClockOutOfRange indicates a fractional-hour value outside [0, 24)
	ErrClockOutOfRange = errors.New("ordertech: time must be between 00:00 and 23:59")
	// ErrInvalidClock indicates a malformed HH:MM string
	ErrInvalidClock = errors.New("ordertech: invalid HH:MM time")
)
