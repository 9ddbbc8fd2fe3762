package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wedonate/internal/auth"
	"wedonate/internal/lookup"
	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"

	"github.com/sirupsen/logrus"
)

// OrganizationService orchestrates the organization lifecycle: uniqueness,
// credential policy, address enrichment, the 30-day profile cooldown and the
// paired media object.
type OrganizationService struct {
	logger    *logrus.Logger
	orgs      OrganizationStore
	campaigns CampaignStore
	locations LocationStore
	media     MediaStore
	geocoder  Geocoder
	tokens    *auth.TokenIssuer

	now func() time.Time
}

func NewOrganizationService(
	logger *logrus.Logger,
	orgs OrganizationStore,
	campaigns CampaignStore,
	locations LocationStore,
	media MediaStore,
	geocoder Geocoder,
	tokens *auth.TokenIssuer,
) *OrganizationService {
	return &OrganizationService{
		logger:    logger,
		orgs:      orgs,
		campaigns: campaigns,
		locations: locations,
		media:     media,
		geocoder:  geocoder,
		tokens:    tokens,
		now:       time.Now,
	}
}

type CreateOrganizationInput struct {
	Name        string
	CNPJ        string
	Email       string
	Password    string
	Phone       *string
	Description *string
	PostalCode  string
	Street      string
	Number      string
	District    string
	City        string
	Image       *types.Upload
}

func (s *OrganizationService) Create(ctx context.Context, in CreateOrganizationInput) (*types.Organization, error) {
	if in.Name == "" || in.Street == "" || in.Number == "" || in.District == "" || in.City == "" || in.PostalCode == "" {
		return nil, types.NewValidationError("name and full address are required")
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePasswordStrength(in.Password); err != nil {
		return nil, err
	}

	cnpj := lookup.OnlyDigits(in.CNPJ)
	if err := validateCNPJ(cnpj); err != nil {
		return nil, err
	}

	taken, err := s.orgs.ExistsByEmailOrCNPJ(ctx, in.Email, cnpj)
	if err != nil {
		return nil, fmt.Errorf("check organization uniqueness: %w", err)
	}
	if taken {
		return nil, types.ErrConflict
	}

	org := &types.Organization{
		ID:          utils.NanoID(),
		Name:        in.Name,
		CNPJ:        cnpj,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
		PostalCode:  in.PostalCode,
		Street:      in.Street,
		Number:      in.Number,
		District:    in.District,
		City:        in.City,
	}

	// Create-time enrichment is strict: an address the provider cannot
	// place rejects the whole create, and a provider failure counts as
	// unresolved rather than surfacing as a server error.
	coords, err := s.geocoder.Resolve(ctx, org.Address())
	if err != nil {
		s.logger.WithError(err).Warn("geocoding failed during create")
		return nil, types.NewValidationError("address could not be found on the map")
	}
	if coords == nil {
		return nil, types.NewValidationError("address could not be found on the map")
	}
	org.Latitude = coords.Latitude
	org.Longitude = coords.Longitude

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	org.PasswordHash = hash

	if in.Image != nil {
		url, err := storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		org.ImageURL = &url
	}

	if err := s.orgs.Create(ctx, org); err != nil {
		// The blob was stored first; without its record it is an orphan.
		releaseMedia(ctx, s.logger, s.media, org.ImageURL)
		return nil, err
	}

	return org, nil
}

// Login verifies a CNPJ/password pair and issues a bearer token whose
// subject is the organization id.
func (s *OrganizationService) Login(ctx context.Context, cnpj, password string) (string, *types.Organization, error) {
	if cnpj == "" || password == "" {
		return "", nil, types.NewValidationError("CNPJ and password are required")
	}

	org, err := s.orgs.OrganizationByCNPJ(ctx, lookup.OnlyDigits(cnpj))
	if err != nil {
		if errors.Is(err, types.ErrOrganizationNotFound) {
			return "", nil, types.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("fetch organization for login: %w", err)
	}

	if !auth.CheckPassword(org.PasswordHash, password) {
		return "", nil, types.ErrUnauthorized
	}

	token, err := s.tokens.Issue(org.ID, org.Name)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, org, nil
}

func (s *OrganizationService) Organization(ctx context.Context, id string) (*types.Organization, error) {
	return s.orgs.Organization(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context) ([]*types.Organization, error) {
	return s.orgs.Organizations(ctx)
}

func (s *OrganizationService) Search(ctx context.Context, name string) ([]*types.Organization, error) {
	if name == "" {
		return nil, types.NewValidationError("search parameter 'nome' is required")
	}
	return s.orgs.SearchByName(ctx, name)
}

type UpdateOrganizationInput struct {
	Name        *string
	Phone       *string
	Password    *string
	Description *string
	PostalCode  *string
	Street      *string
	Number      *string
	District    *string
	City        *string
	Image       *types.Upload
}

func (in *UpdateOrganizationInput) empty() bool {
	return in.Name == nil && in.Phone == nil && in.Password == nil && in.Description == nil &&
		in.PostalCode == nil && in.Street == nil && in.Number == nil && in.District == nil &&
		in.City == nil && in.Image == nil
}

func (in *UpdateOrganizationInput) addressChanged() bool {
	return in.PostalCode != nil || in.Street != nil || in.Number != nil || in.District != nil || in.City != nil
}

func (s *OrganizationService) Update(ctx context.Context, callerID, id string, in UpdateOrganizationInput) (*types.Organization, error) {
	// An organization owns only its own profile.
	if err := requireOwner(callerID, id); err != nil {
		return nil, err
	}

	if in.empty() {
		return nil, types.ErrEmptyPatch
	}

	current, err := s.orgs.Organization(ctx, id)
	if err != nil {
		return nil, err
	}

	if remaining, throttled := profileUpdateThrottle(current.LastChangeAt, s.now()); throttled {
		return nil, &types.ThrottledError{DaysRemaining: remaining}
	}

	patch := store.NewPatch().
		SetString("nome_organizacao", in.Name).
		SetString("telefone", in.Phone).
		SetString("descricao", in.Description).
		SetString("cep", in.PostalCode).
		SetString("rua", in.Street).
		SetString("numero", in.Number).
		SetString("bairro", in.District).
		SetString("cidade", in.City)

	if in.Password != nil {
		if err := validatePasswordStrength(*in.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.Set("senha_hash", hash)
	}

	if in.addressChanged() {
		merged := types.Organization{
			Street:     orValue(in.Street, current.Street),
			Number:     orValue(in.Number, current.Number),
			District:   orValue(in.District, current.District),
			City:       orValue(in.City, current.City),
			PostalCode: orValue(in.PostalCode, current.PostalCode),
		}

		// Update-time enrichment is soft: an unresolved address leaves the
		// stored coordinates untouched.
		coords, err := s.geocoder.Resolve(ctx, merged.Address())
		if err != nil {
			s.logger.WithError(err).Warn("geocoding failed during update, keeping stored coordinates")
		} else if coords != nil {
			patch.Set("latitude", coords.Latitude)
			patch.Set("longitude", coords.Longitude)
		}
	}

	var newImageURL string
	if in.Image != nil {
		newImageURL, err = storeUpload(ctx, s.media, in.Image, s.now())
		if err != nil {
			return nil, err
		}
		patch.Set("imagem_url", newImageURL)
	}

	// Eligible updates always advance the cooldown clock in the same write.
	patch.Set("data_ultima_alteracao", s.now())

	updated, err := s.orgs.Update(ctx, id, patch)
	if err != nil {
		if in.Image != nil {
			releaseMedia(ctx, s.logger, s.media, &newImageURL)
		}
		return nil, err
	}

	// Only drop the old object once the record durably references the new
	// one.
	if in.Image != nil {
		releaseMedia(ctx, s.logger, s.media, current.ImageURL)
	}

	return updated, nil
}

// Delete removes the organization together with the campaigns and locations
// it owns. Each child's blob is released before its row; a record without
// its blob is acceptable, a blob without a record is an orphan leak.
func (s *OrganizationService) Delete(ctx context.Context, callerID, id string) error {
	if err := requireOwner(callerID, id); err != nil {
		return err
	}

	org, err := s.orgs.Organization(ctx, id)
	if err != nil {
		return err
	}

	campaigns, err := s.campaigns.CampaignsByOrganization(ctx, id)
	if err != nil {
		return fmt.Errorf("list campaigns for cascade: %w", err)
	}
	for _, campaign := range campaigns {
		releaseMedia(ctx, s.logger, s.media, campaign.ImageURL)
		if err := s.campaigns.Delete(ctx, campaign.ID); err != nil {
			return fmt.Errorf("cascade delete campaign %s: %w", campaign.ID, err)
		}
	}

	locations, err := s.locations.LocationsByOrganization(ctx, id)
	if err != nil {
		return fmt.Errorf("list locations for cascade: %w", err)
	}
	for _, location := range locations {
		releaseMedia(ctx, s.logger, s.media, location.ImageURL)
		if err := s.locations.Delete(ctx, location.ID); err != nil {
			return fmt.Errorf("cascade delete location %s: %w", location.ID, err)
		}
	}

	releaseMedia(ctx, s.logger, s.media, org.ImageURL)

	return s.orgs.Delete(ctx, id)
}

func orValue(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
