package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"megacitycab/internal/models"
	"megacitycab/pkg/logger"
	"megacitycab/pkg/maps"
)

type RouteService interface {
	// Route resolves two free-text addresses into a driving route.
	Route(ctx context.Context, pickup, dropOff string) (*models.RouteResult, error)
	Suggest(ctx context.Context, input string) ([]maps.Prediction, error)
}

type routeService struct {
	provider maps.MapsProvider
	logger   *logger.Logger
}

func NewRouteService(provider maps.MapsProvider, log *logger.Logger) RouteService {
	return &routeService{provider: provider, logger: log}
}

func (s *routeService) Route(ctx context.Context, pickup, dropOff string) (*models.RouteResult, error) {
	pickup, dropOff = strings.TrimSpace(pickup), strings.TrimSpace(dropOff)
	if pickup == "" || dropOff == "" {
		return nil, maps.ErrEmptyAddress
	}

	resp, err := s.provider.GetDirections(ctx, &maps.DirectionsRequest{
		Origin:      pickup,
		Destination: dropOff,
	})
	if err != nil {
		if errors.Is(err, maps.ErrNoRoute) || errors.Is(err, maps.ErrNoResults) {
			return nil, ErrNoRoute
		}
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"pickup":   pickup,
			"drop_off": dropOff,
		}).Error("Directions lookup failed")
		return nil, fmt.Errorf("directions lookup failed: %w", err)
	}
	if len(resp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	route := resp.Routes[0]
	return &models.RouteResult{
		DistanceKm:      route.Distance.Value / 1000,
		DistanceText:    route.Distance.Text,
		DurationText:    route.Duration.Text,
		DurationSeconds: route.Duration.Value,
		Polyline:        route.Polyline,
		StartAddress:    route.StartAddress,
		EndAddress:      route.EndAddress,
	}, nil
}

func (s *routeService) Suggest(ctx context.Context, input string) ([]maps.Prediction, error) {
	resp, err := s.provider.Autocomplete(ctx, &maps.AutocompleteRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("autocomplete failed: %w", err)
	}
	return resp.Predictions, nil
}
