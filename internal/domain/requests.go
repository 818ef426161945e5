package domain

// Lat/Lng deliberately carry no required tag: 0 is a valid coordinate
// (equator, prime meridian) and the range tags already bound the values.
type ReportFixRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type ReportFixResponse struct {
	Record LocationRecord `json:"record"`
}
