package flight

import "github.com/ukydev/study-air/internal/models"

// Origin is the departure point of every flight (New Delhi).
var Origin = models.GeoPoint{Lat: 28.6139, Lon: 77.2090}

// countries is the destination table in display order.
var countries = []models.Country{
	{Name: "United States", Point: models.GeoPoint{Lat: 38.0, Lon: -97.0}, Airport: "JFK"},
	{Name: "United Kingdom", Point: models.GeoPoint{Lat: 51.509, Lon: -0.118}},
	{Name: "France", Point: models.GeoPoint{Lat: 48.8566, Lon: 2.3522}},
	{Name: "Germany", Point: models.GeoPoint{Lat: 52.52, Lon: 13.405}},
	{Name: "Japan", Point: models.GeoPoint{Lat: 35.6895, Lon: 139.6917}},
	{Name: "Australia", Point: models.GeoPoint{Lat: -33.8688, Lon: 151.2093}},
	{Name: "Brazil", Point: models.GeoPoint{Lat: -23.5505, Lon: -46.6333}},
	{Name: "South Africa", Point: models.GeoPoint{Lat: -26.2041, Lon: 28.0473}},
	{Name: "Canada", Point: models.GeoPoint{Lat: 45.4215, Lon: -75.6972}},
	{Name: "Singapore", Point: models.GeoPoint{Lat: 1.3521, Lon: 103.8198}},
}

var byName = func() map[string]models.Country {
	m := make(map[string]models.Country, len(countries))
	for _, c := range countries {
		m[c.Name] = c
	}
	return m
}()

// CountryNames returns the destination names in table order.
func CountryNames() []string {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return names
}

// LookupCountry returns the destination with the exact given name.
func LookupCountry(name string) (models.Country, bool) {
	c, ok := byName[name]
	return c, ok
}
