package service

import (
	"context"
	"io"

	"wedonate/internal/store"
	"wedonate/pkg/types"
)

// The services depend on narrow interfaces so tests can substitute fakes for
// the database pool, the blob store, and the geocoding provider. The real
// implementations live in internal/store, internal/storage and
// internal/geocode and are constructed once at process start.

type OrganizationStore interface {
	Organization(ctx context.Context, id string) (*types.Organization, error)
	OrganizationByCNPJ(ctx context.Context, cnpj string) (*types.Organization, error)
	Organizations(ctx context.Context) ([]*types.Organization, error)
	SearchByName(ctx context.Context, name string) ([]*types.Organization, error)
	ExistsByEmailOrCNPJ(ctx context.Context, email, cnpj string) (bool, error)
	Create(ctx context.Context, org *types.Organization) error
	Update(ctx context.Context, id string, patch *store.Patch) (*types.Organization, error)
	Delete(ctx context.Context, id string) error
}

type CampaignStore interface {
	Campaign(ctx context.Context, id string) (*types.Campaign, error)
	Campaigns(ctx context.Context) ([]*types.Campaign, error)
	CampaignsByOrganization(ctx context.Context, orgID string) ([]*types.Campaign, error)
	SearchByTitle(ctx context.Context, title string) ([]*types.Campaign, error)
	Create(ctx context.Context, campaign *types.Campaign) error
	Update(ctx context.Context, id string, patch *store.Patch) (*types.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type LocationStore interface {
	Location(ctx context.Context, id string) (*types.Location, error)
	Locations(ctx context.Context) ([]*types.Location, error)
	LocationsByOrganization(ctx context.Context, orgID string) ([]*types.Location, error)
	Create(ctx context.Context, location *types.Location) error
	Update(ctx context.Context, id string, patch *store.Patch) (*types.Location, error)
	Delete(ctx context.Context, id string) error
}

type MediaStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (*types.Coordinates, error)
}
