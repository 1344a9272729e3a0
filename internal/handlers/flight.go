package handlers

import (
	"errors"
	"net/http"

	"github.com/ukydev/study-air/internal/flight"
	"github.com/ukydev/study-air/internal/models"
)

// Countries lists the destination names.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"countries": flight.CountryNames()})
}

// Flight computes the flight to the requested country. Unknown countries,
// including the empty name, get a zeroed result rather than an error.
func (h *Handler) Flight(w http.ResponseWriter, r *http.Request) {
	var req models.FlightRequest
	raw, ok := decodeObject(w, r, &req, models.FlightRequired...)
	if !ok {
		return
	}
	if err := models.RejectNull(raw, "speed_kmh"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	speed := flight.DefaultSpeedKmh
	if req.SpeedKmh != nil {
		speed = *req.SpeedKmh
	}

	res, err := flight.Compute(req.Country, speed)
	if err != nil {
		if errors.Is(err, flight.ErrInvalidSpeed) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to compute flight", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
