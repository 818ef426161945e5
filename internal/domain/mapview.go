package domain

// Default span of the rendered map region around a selected record.
const (
	DefaultLatitudeDelta  = 0.0922
	DefaultLongitudeDelta = 0.0421
)

type MapRegion struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// MapPayload is what the map view renders: one record, one marker, centered
// on the record's coordinates.
type MapPayload struct {
	Record LocationRecord `json:"record"`
	Region MapRegion      `json:"region"`
}

func NewMapPayload(rec LocationRecord) MapPayload {
	return MapPayload{
		Record: rec,
		Region: MapRegion{
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
			LatitudeDelta:  DefaultLatitudeDelta,
			LongitudeDelta: DefaultLongitudeDelta,
		},
	}
}
