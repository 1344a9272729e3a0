package models

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

// Country is an entry of the static destination table.
type Country struct {
	Name    string
	Point   GeoPoint
	Airport string
}
