package models

type FareEstimate struct {
	BaseFare   float64 `json:"baseFare"`
	RatePerKm  float64 `json:"ratePerKm"`
	DistanceKm float64 `json:"distanceKm"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}
