package models

type RouteResult struct {
	DistanceKm      float64 `json:"distanceKm"`
	DistanceText    string  `json:"distanceText"`
	DurationText    string  `json:"durationText"`
	DurationSeconds int     `json:"durationSeconds"`
	Polyline        string  `json:"polyline,omitempty"`
	StartAddress    string  `json:"startAddress,omitempty"`
	EndAddress      string  `json:"endAddress,omitempty"`
}
