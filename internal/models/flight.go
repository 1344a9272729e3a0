package models

// FlightRequest is the body of POST /flight. SpeedKmh is optional.
type FlightRequest struct {
	Country  string   `json:"country"`
	SpeedKmh *float64 `json:"speed_kmh,omitempty"`
}

// FlightResult describes a simulated flight from the origin to a country.
type FlightResult struct {
	Country         string     `json:"country"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes int        `json:"duration_minutes"`
	Path            []GeoPoint `json:"path"`
}
