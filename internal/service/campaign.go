package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"

	"github.com/sirupsen/logrus"
)

type CampaignService struct {
	logger    *logrus.Logger
	campaigns CampaignStore
	media     MediaStore

	now func() time.Time
}

func NewCampaignService(logger *logrus.Logger, campaigns CampaignStore, media MediaStore) *CampaignService {
	return &CampaignService{
		logger:    logger,
		campaigns: campaigns,
		media:     media,
		now:       time.Now,
	}
}

type CreateCampaignInput struct {
	Title        string
	Description  *string
	NeededItems  *string
	VenueAddress string
	StartDate    time.Time
	EndDate      *time.Time
	Status       types.CampaignStatus
	Image        *types.Upload
}

// Create registers a campaign owned by the calling organization. The owner
// comes from the verified token subject, never from the request body.
func (s *CampaignService) Create(ctx context.Context, callerID string, in CreateCampaignInput) (*types.Campaign, error) {
	if callerID == "" {
		return nil, types.ErrForbidden
	}
	if in.Title == "" || in.VenueAddress == "" || in.StartDate.IsZero() {
		return nil, types.NewValidationError("title, venue address and start date are required")
	}
	if err := validateCampaignDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = types.CampaignStatusActive
	}

	campaign := &types.Campaign{
		ID:             utils.NanoID(),
		OrganizationID: callerID,
		Title:          in.Title,
		Description:    in.Description,
		NeededItems:    in.NeededItems,
		VenueAddress:   in.VenueAddress,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Status:         status,
	}

	if in.Image != nil {
		url, err := storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		campaign.ImageURL = &url
	}

	if err := s.campaigns.Create(ctx, campaign); err != nil {
		releaseMedia(ctx, s.logger, s.media, campaign.ImageURL)
		return nil, err
	}

	campaign.TimeRemaining = timeRemaining(campaign.EndDate, s.now())

	return campaign, nil
}

func (s *CampaignService) Campaign(ctx context.Context, id string) (*types.Campaign, error) {
	campaign, err := s.campaigns.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}

	campaign.TimeRemaining = timeRemaining(campaign.EndDate, s.now())

	return campaign, nil
}

func (s *CampaignService) List(ctx context.Context) ([]*types.Campaign, error) {
	campaigns, err := s.campaigns.Campaigns(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, campaign := range campaigns {
		campaign.TimeRemaining = timeRemaining(campaign.EndDate, now)
	}

	return campaigns, nil
}

func (s *CampaignService) Search(ctx context.Context, title string) ([]*types.Campaign, error) {
	if title == "" {
		return nil, types.NewValidationError("search parameter 'titulo' is required")
	}

	campaigns, err := s.campaigns.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, campaign := range campaigns {
		campaign.TimeRemaining = timeRemaining(campaign.EndDate, now)
	}

	return campaigns, nil
}

type UpdateCampaignInput struct {
	Title        *string
	Description  *string
	NeededItems  *string
	VenueAddress *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Status       *types.CampaignStatus
	Image        *types.Upload
}

func (in *UpdateCampaignInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.NeededItems == nil &&
		in.VenueAddress == nil && in.StartDate == nil && in.EndDate == nil &&
		!in.ClearEndDate && in.Status == nil && in.Image == nil
}

func (s *CampaignService) Update(ctx context.Context, callerID, id string, in UpdateCampaignInput) (*types.Campaign, error) {
	current, err := s.campaigns.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(callerID, current.OrganizationID); err != nil {
		return nil, err
	}

	if in.empty() {
		return nil, types.ErrEmptyPatch
	}

	// The date rule holds against the merged state, not just the request.
	mergedStart := current.StartDate
	if in.StartDate != nil {
		mergedStart = *in.StartDate
	}
	mergedEnd := current.EndDate
	if in.ClearEndDate {
		mergedEnd = nil
	} else if in.EndDate != nil {
		mergedEnd = in.EndDate
	}
	if err := validateCampaignDates(mergedStart, mergedEnd); err != nil {
		return nil, err
	}

	patch := store.NewPatch().
		SetString("titulo", in.Title).
		SetString("descricao", in.Description).
		SetString("itens_necessarios", in.NeededItems).
		SetString("endereco_campanha", in.VenueAddress)

	if in.StartDate != nil {
		patch.Set("data_inicio", *in.StartDate)
	}
	if in.ClearEndDate {
		patch.SetNull("data_fim")
	} else if in.EndDate != nil {
		patch.Set("data_fim", *in.EndDate)
	}
	if in.Status != nil {
		patch.Set("status", *in.Status)
	}

	var newImageURL string
	if in.Image != nil {
		newImageURL, err = storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		patch.Set("imagem_url", newImageURL)
	}

	updated, err := s.campaigns.Update(ctx, id, patch)
	if err != nil {
		if in.Image != nil {
			releaseMedia(ctx, s.logger, s.media, &newImageURL)
		}
		return nil, err
	}

	if in.Image != nil {
		releaseMedia(ctx, s.logger, s.media, current.ImageURL)
	}

	updated.TimeRemaining = timeRemaining(updated.EndDate, s.now())

	return updated, nil
}

func (s *CampaignService) Delete(ctx context.Context, callerID, id string) error {
	current, err := s.campaigns.Campaign(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(callerID, current.OrganizationID); err != nil {
		return err
	}

	releaseMedia(ctx, s.logger, s.media, current.ImageURL)

	return s.campaigns.Delete(ctx, id)
}

func validateCampaignDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return types.NewValidationError("end date must not be before start date")
	}
	return nil
}

// timeRemaining renders how long a campaign stays open: "open-ended" without
// an end date, "closed" once the end date has passed, otherwise the ceiling
// of the days left ("closes today" when that is exactly one).
func timeRemaining(end *time.Time, now time.Time) string {
	if end == nil {
		return "open-ended"
	}

	if !end.After(now) {
		return "closed"
	}

	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	if days == 1 {
		return "closes today"
	}

	return fmt.Sprintf("closes in %d days", days)
}
