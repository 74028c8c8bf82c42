// Package fare prices a ride from its road distance.
package fare

import (
	"errors"
	"math"

	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

const (
	DefaultBaseFare  = 5.0
	DefaultRatePerKm = 2.0
)

var (
	ErrInvalidDistance = errors.New("distance must be a finite, non-negative number of kilometres")
	ErrInvalidRate     = errors.New("rate per km must be a non-negative number")
)

type Calculator struct {
	baseFare    float64
	defaultRate float64
	currency    string
}

// NewCalculator falls back to the package defaults for non-positive inputs.
func NewCalculator(baseFare, defaultRate float64, currency string) *Calculator {
	if baseFare <= 0 || math.IsNaN(baseFare) {
		baseFare = DefaultBaseFare
	}
	if defaultRate <= 0 || math.IsNaN(defaultRate) {
		defaultRate = DefaultRatePerKm
	}
	if currency == "" {
		currency = utils.DefaultCurrency
	}
	return &Calculator{baseFare: baseFare, defaultRate: defaultRate, currency: currency}
}

// Calculate returns baseFare + distanceKm * rate rounded to cents. A nil or
// zero rate uses the default per-km rate.
func (c *Calculator) Calculate(distanceKm float64, ratePerKm *float64) (*models.FareEstimate, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return nil, ErrInvalidDistance
	}

	rate := c.defaultRate
	if ratePerKm != nil {
		r := *ratePerKm
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, ErrInvalidRate
		}
		if r > 0 {
			rate = r
		}
	}

	return &models.FareEstimate{
		BaseFare:   c.baseFare,
		RatePerKm:  rate,
		DistanceKm: distanceKm,
		Amount:     utils.RoundCurrency(c.baseFare + distanceKm*rate),
		Currency:   c.currency,
	}, nil
}

func (c *Calculator) BaseFare() float64 {
	return c.baseFare
}
