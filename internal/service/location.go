package service

import (
	"context"
	"time"

	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"

	"github.com/sirupsen/logrus"
)

type LocationService struct {
	logger    *logrus.Logger
	locations LocationStore
	media     MediaStore

	now func() time.Time
}

func NewLocationService(logger *logrus.Logger, locations LocationStore, media MediaStore) *LocationService {
	return &LocationService{
		logger:    logger,
		locations: locations,
		media:     media,
		now:       time.Now,
	}
}

type CreateLocationInput struct {
	Name              string
	Address           string
	Latitude          float64
	Longitude         float64
	Description       *string
	Category          *string
	Phone             *string
	OperationalStatus *string
	Image             *types.Upload
}

func (s *LocationService) Create(ctx context.Context, callerID string, in CreateLocationInput) (*types.Location, error) {
	if callerID == "" {
		return nil, types.ErrForbidden
	}
	if in.Name == "" || in.Address == "" {
		return nil, types.NewValidationError("name and address are required")
	}

	location := &types.Location{
		ID:                utils.NanoID(),
		OrganizationID:    callerID,
		Name:              in.Name,
		Address:           in.Address,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		Description:       in.Description,
		Category:          in.Category,
		Phone:             in.Phone,
		OperationalStatus: in.OperationalStatus,
	}

	if in.Image != nil {
		url, err := storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		location.ImageURL = &url
	}

	if err := s.locations.Create(ctx, location); err != nil {
		releaseMedia(ctx, s.logger, s.media, location.ImageURL)
		return nil, err
	}

	return location, nil
}

func (s *LocationService) Location(ctx context.Context, id string) (*types.Location, error) {
	return s.locations.Location(ctx, id)
}

func (s *LocationService) List(ctx context.Context) ([]*types.Location, error) {
	return s.locations.Locations(ctx)
}

type UpdateLocationInput struct {
	Name              *string
	Address           *string
	Latitude          *float64
	Longitude         *float64
	Description       *string
	Category          *string
	Phone             *string
	OperationalStatus *string
	Image             *types.Upload
}

func (in *UpdateLocationInput) empty() bool {
	return in.Name == nil && in.Address == nil && in.Latitude == nil && in.Longitude == nil &&
		in.Description == nil && in.Category == nil && in.Phone == nil &&
		in.OperationalStatus == nil && in.Image == nil
}

func (s *LocationService) Update(ctx context.Context, callerID, id string, in UpdateLocationInput) (*types.Location, error) {
	current, err := s.locations.Location(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(callerID, current.OrganizationID); err != nil {
		return nil, err
	}

	if in.empty() {
		return nil, types.ErrEmptyPatch
	}

	patch := store.NewPatch().
		SetString("nome", in.Name).
		SetString("endereco", in.Address).
		SetString("descricao", in.Description).
		SetString("categoria", in.Category).
		SetString("telefone", in.Phone).
		SetString("status_operacional", in.OperationalStatus)

	if in.Latitude != nil {
		patch.Set("latitude", *in.Latitude)
	}
	if in.Longitude != nil {
		patch.Set("longitude", *in.Longitude)
	}

	var newImageURL string
	if in.Image != nil {
		newImageURL, err = storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		patch.Set("imagem_url", newImageURL)
	}

	updated, err := s.locations.Update(ctx, id, patch)
	if err != nil {
		if in.Image != nil {
			releaseMedia(ctx, s.logger, s.media, &newImageURL)
		}
		return nil, err
	}

	if in.Image != nil {
		releaseMedia(ctx, s.logger, s.media, current.ImageURL)
	}

	return updated, nil
}

func (s *LocationService) Delete(ctx context.Context, callerID, id string) error {
	current, err := s.locations.Location(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(callerID, current.OrganizationID); err != nil {
		return err
	}

	releaseMedia(ctx, s.logger, s.media, current.ImageURL)

	return s.locations.Delete(ctx, id)
}
