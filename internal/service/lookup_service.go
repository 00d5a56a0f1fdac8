package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"vrm-lookup/internal/dvla"
	"vrm-lookup/internal/utils"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// VehicleAPI is the slice of the DVLA client the lookup flow needs.
type VehicleAPI interface {
	Lookup(ctx context.Context, plate string) (*dvla.VehicleRecord, error)
}

// LookupResult carries the reduced field set returned to API consumers.
// Fields stay nil when the upstream record omits them.
type LookupResult struct {
	Make              *string `json:"make"`
	Model             *string `json:"model"`
	Colour            *string `json:"colour"`
	YearOfManufacture *int    `json:"year_of_manufacture"`
	FuelType          *string `json:"fuel_type"`
}

type LookupService struct {
	api VehicleAPI
	log zerolog.Logger
}

func NewLookupService(api VehicleAPI, log zerolog.Logger) *LookupService {
	return &LookupService{
		api: api,
		log: log,
	}
}

// Lookup resolves a raw user-supplied plate to vehicle details. The plate is
// trimmed, normalized and sent upstream in a single pass; no state survives
// the call.
func (s *LookupService) Lookup(ctx context.Context, rawPlate string) (*LookupResult, error) {
	plate := strings.TrimSpace(rawPlate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate required", ErrInvalidInput)
	}

	normalized := utils.NormalizePlate(plate)

	record, err := s.api.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, dvla.ErrNotConfigured) {
			// Missing API key is kept distinct internally but answers
			// not-found externally, matching the upstream-less deployment.
			s.log.Warn().
				Str("plate", normalized).
				Msg("DVLA API key not configured, reporting vehicle as not found")
			return nil, fmt.Errorf("%w: Vehicle not found", ErrNotFound)
		}
		if errors.Is(err, dvla.ErrNotFound) {
			s.log.Info().
				Str("plate", normalized).
				Msg("vehicle not found upstream")
			return nil, fmt.Errorf("%w: Vehicle not found", ErrNotFound)
		}
		return nil, err
	}

	s.log.Info().
		Str("plate", normalized).
		Str("raw_plate", rawPlate).
		Msg("vehicle lookup succeeded")

	return &LookupResult{
		Make:              record.Make,
		Model:             record.Model,
		Colour:            record.Colour,
		YearOfManufacture: record.YearOfManufacture,
		FuelType:          record.FuelType,
	}, nil
}
