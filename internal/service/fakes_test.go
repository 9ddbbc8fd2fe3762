package service

import (
	"context"
	"io"
	"time"

	"wedonate/internal/store"
	"wedonate/pkg/types"

	"github.com/sirupsen/logrus"
)

// The fakes share a single call log so tests can assert cross-collaborator
// ordering (e.g. media put before record write before old-media delete).

type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

type fakeOrgStore struct {
	log *callLog

	org       *types.Organization
	byCNPJ    *types.Organization
	all       []*types.Organization
	exists    bool
	createErr error
	updateErr error

	created   *types.Organization
	lastPatch *store.Patch
	deleted   []string
}

func (f *fakeOrgStore) Organization(ctx context.Context, id string) (*types.Organization, error) {
	f.log.record("orgs.Organization")
	if f.org == nil || f.org.ID != id {
		return nil, types.ErrOrganizationNotFound
	}
	return f.org, nil
}

func (f *fakeOrgStore) OrganizationByCNPJ(ctx context.Context, cnpj string) (*types.Organization, error) {
	f.log.record("orgs.OrganizationByCNPJ")
	if f.byCNPJ == nil || f.byCNPJ.CNPJ != cnpj {
		return nil, types.ErrOrganizationNotFound
	}
	return f.byCNPJ, nil
}

func (f *fakeOrgStore) Organizations(ctx context.Context) ([]*types.Organization, error) {
	f.log.record("orgs.Organizations")
	return f.all, nil
}

func (f *fakeOrgStore) SearchByName(ctx context.Context, name string) ([]*types.Organization, error) {
	f.log.record("orgs.SearchByName")
	return f.all, nil
}

func (f *fakeOrgStore) ExistsByEmailOrCNPJ(ctx context.Context, email, cnpj string) (bool, error) {
	f.log.record("orgs.ExistsByEmailOrCNPJ")
	return f.exists, nil
}

func (f *fakeOrgStore) Create(ctx context.Context, org *types.Organization) error {
	f.log.record("orgs.Create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = org
	return nil
}

func (f *fakeOrgStore) Update(ctx context.Context, id string, patch *store.Patch) (*types.Organization, error) {
	f.log.record("orgs.Update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastPatch = patch
	if f.org == nil || f.org.ID != id {
		return nil, types.ErrOrganizationNotFound
	}
	return f.org, nil
}

func (f *fakeOrgStore) Delete(ctx context.Context, id string) error {
	f.log.record("orgs.Delete")
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCampaignStore struct {
	log *callLog

	campaign *types.Campaign
	all      []*types.Campaign
	byOrg    []*types.Campaign

	created   *types.Campaign
	lastPatch *store.Patch
	deleted   []string
}

func (f *fakeCampaignStore) Campaign(ctx context.Context, id string) (*types.Campaign, error) {
	f.log.record("campaigns.Campaign")
	if f.campaign == nil || f.campaign.ID != id {
		return nil, types.ErrCampaignNotFound
	}
	return f.campaign, nil
}

func (f *fakeCampaignStore) Campaigns(ctx context.Context) ([]*types.Campaign, error) {
	f.log.record("campaigns.Campaigns")
	return f.all, nil
}

func (f *fakeCampaignStore) CampaignsByOrganization(ctx context.Context, orgID string) ([]*types.Campaign, error) {
	f.log.record("campaigns.CampaignsByOrganization")
	return f.byOrg, nil
}

func (f *fakeCampaignStore) SearchByTitle(ctx context.Context, title string) ([]*types.Campaign, error) {
	f.log.record("campaigns.SearchByTitle")
	return f.all, nil
}

func (f *fakeCampaignStore) Create(ctx context.Context, campaign *types.Campaign) error {
	f.log.record("campaigns.Create")
	f.created = campaign
	return nil
}

func (f *fakeCampaignStore) Update(ctx context.Context, id string, patch *store.Patch) (*types.Campaign, error) {
	f.log.record("campaigns.Update")
	f.lastPatch = patch
	if f.campaign == nil || f.campaign.ID != id {
		return nil, types.ErrCampaignNotFound
	}
	return f.campaign, nil
}

func (f *fakeCampaignStore) Delete(ctx context.Context, id string) error {
	f.log.record("campaigns.Delete")
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeLocationStore struct {
	log *callLog

	location *types.Location
	all      []*types.Location
	byOrg    []*types.Location

	created   *types.Location
	lastPatch *store.Patch
	deleted   []string
}

func (f *fakeLocationStore) Location(ctx context.Context, id string) (*types.Location, error) {
	f.log.record("locations.Location")
	if f.location == nil || f.location.ID != id {
		return nil, types.ErrLocationNotFound
	}
	return f.location, nil
}

func (f *fakeLocationStore) Locations(ctx context.Context) ([]*types.Location, error) {
	f.log.record("locations.Locations")
	return f.all, nil
}

func (f *fakeLocationStore) LocationsByOrganization(ctx context.Context, orgID string) ([]*types.Location, error) {
	f.log.record("locations.LocationsByOrganization")
	return f.byOrg, nil
}

func (f *fakeLocationStore) Create(ctx context.Context, location *types.Location) error {
	f.log.record("locations.Create")
	f.created = location
	return nil
}

func (f *fakeLocationStore) Update(ctx context.Context, id string, patch *store.Patch) (*types.Location, error) {
	f.log.record("locations.Update")
	f.lastPatch = patch
	if f.location == nil || f.location.ID != id {
		return nil, types.ErrLocationNotFound
	}
	return f.location, nil
}

func (f *fakeLocationStore) Delete(ctx context.Context, id string) error {
	f.log.record("locations.Delete")
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeMediaStore struct {
	log *callLog

	putErr error

	putKeys    []string
	deleteKeys []string
}

func (f *fakeMediaStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.log.record("media.Put")
	if f.putErr != nil {
		return "", f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return "https://bucket.s3.sa-east-1.amazonaws.com/" + key, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, key string) error {
	f.log.record("media.Delete")
	f.deleteKeys = append(f.deleteKeys, key)
	return nil
}

type fakeGeocoder struct {
	log *callLog

	coords    *types.Coordinates
	err       error
	addresses []string
}

func (f *fakeGeocoder) Resolve(ctx context.Context, address string) (*types.Coordinates, error) {
	f.log.record("geocoder.Resolve")
	f.addresses = append(f.addresses, address)
	if f.err != nil {
		return nil, f.err
	}
	return f.coords, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixedNow() time.Time {
	return time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
}
