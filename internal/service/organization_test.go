package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wedonate/internal/auth"
	"wedonate/internal/utils"
	"wedonate/pkg/types"
)

func newOrgFixture() (*OrganizationService, *fakeOrgStore, *fakeCampaignStore, *fakeLocationStore, *fakeMediaStore, *fakeGeocoder, *callLog) {
	log := &callLog{}
	orgs := &fakeOrgStore{log: log}
	campaigns := &fakeCampaignStore{log: log}
	locations := &fakeLocationStore{log: log}
	media := &fakeMediaStore{log: log}
	geocoder := &fakeGeocoder{log: log, coords: &types.Coordinates{Latitude: -25.43, Longitude: -49.27}}

	svc := NewOrganizationService(
		testLogger(), orgs, campaigns, locations, media, geocoder,
		auth.NewTokenIssuer("test-secret", 8*time.Hour),
	)
	svc.now = fixedNow

	return svc, orgs, campaigns, locations, media, geocoder, log
}

func validCreateInput() CreateOrganizationInput {
	return CreateOrganizationInput{
		Name:       "ONG Exemplo",
		CNPJ:       "12.345.678/0001-95",
		Email:      "ong@example.com",
		Password:   "S3nh@forte",
		PostalCode: "80000000",
		Street:     "Rua A",
		Number:     "10",
		District:   "Centro",
		City:       "Curitiba",
	}
}

func TestOrganizationCreate(t *testing.T) {
	svc, orgs, _, _, _, geocoder, _ := newOrgFixture()

	org, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if org.ID == "" {
		t.Error("no server-assigned id")
	}
	if org.CNPJ != "12345678000195" {
		t.Errorf("CNPJ = %q, want normalized digits", org.CNPJ)
	}
	if org.Latitude != -25.43 || org.Longitude != -49.27 {
		t.Errorf("coordinates = %v,%v, want enriched values", org.Latitude, org.Longitude)
	}
	if !auth.CheckPassword(org.PasswordHash, "S3nh@forte") {
		t.Error("stored hash does not match the submitted password")
	}
	if orgs.created == nil {
		t.Fatal("record was not persisted")
	}
	if got := geocoder.addresses[0]; got != "Rua A, 10, Centro, Curitiba, 80000000" {
		t.Errorf("geocoded address = %q", got)
	}
}

func TestOrganizationCreateDuplicate(t *testing.T) {
	svc, orgs, _, _, media, _, _ := newOrgFixture()
	orgs.exists = true

	_, err := svc.Create(context.Background(), validCreateInput())
	if !errors.Is(err, types.ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
	if orgs.created != nil || len(media.putKeys) != 0 {
		t.Error("conflict must stop before any write")
	}
}

func TestOrganizationCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrganizationInput)
	}{
		{"bad email", func(in *CreateOrganizationInput) { in.Email = "not-an-email" }},
		{"weak password", func(in *CreateOrganizationInput) { in.Password = "fraca" }},
		{"bad cnpj", func(in *CreateOrganizationInput) { in.CNPJ = "12345678000190" }},
		{"missing name", func(in *CreateOrganizationInput) { in.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orgs, _, _, _, _, log := newOrgFixture()
			in := validCreateInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if orgs.created != nil || len(log.calls) > 1 {
				t.Errorf("validation failure must short-circuit, calls = %v", log.calls)
			}
		})
	}
}

func TestOrganizationCreateUnresolvedAddress(t *testing.T) {
	svc, orgs, _, _, media, geocoder, _ := newOrgFixture()
	geocoder.coords = nil

	_, err := svc.Create(context.Background(), validCreateInput())

	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want ValidationError for unresolved address", err)
	}
	if orgs.created != nil || len(media.putKeys) != 0 {
		t.Error("unresolved address must reject the create before any write")
	}
}

func TestOrganizationCreateGeocoderFailure(t *testing.T) {
	svc, orgs, _, _, media, geocoder, _ := newOrgFixture()
	geocoder.err = &types.ExternalServiceError{Service: "geocode", Err: errors.New("connection refused")}

	_, err := svc.Create(context.Background(), validCreateInput())

	// A provider failure at create time counts as an unresolved address, not
	// a server error.
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want ValidationError when the provider fails", err)
	}
	if orgs.created != nil || len(media.putKeys) != 0 {
		t.Error("geocoder failure must reject the create before any write")
	}
}

func TestOrganizationLogin(t *testing.T) {
	svc, orgs, _, _, _, _, _ := newOrgFixture()

	hash, _ := auth.HashPassword("S3nh@forte")
	orgs.byCNPJ = &types.Organization{ID: "org-1", Name: "ONG", CNPJ: "12345678000195", PasswordHash: hash}

	token, org, err := svc.Login(context.Background(), "12.345.678/0001-95", "S3nh@forte")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" || org.ID != "org-1" {
		t.Errorf("token = %q, org = %+v", token, org)
	}

	if _, _, err := svc.Login(context.Background(), "12345678000195", "errada"); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("wrong password error = %v, want ErrUnauthorized", err)
	}
	if _, _, err := svc.Login(context.Background(), "99999999000199", "S3nh@forte"); !errors.Is(err, types.ErrUnauthorized) {
		t.Errorf("unknown cnpj error = %v, want ErrUnauthorized", err)
	}
}

func TestOrganizationUpdateDeniedForNonOwner(t *testing.T) {
	svc, orgs, _, _, media, geocoder, log := newOrgFixture()
	orgs.org = &types.Organization{ID: "org-1"}

	_, err := svc.Update(context.Background(), "org-2", "org-1", UpdateOrganizationInput{
		Phone: utils.StringPtr("11999990000"),
	})
	if !errors.Is(err, types.ErrForbidden) {
		t.Fatalf("Update() error = %v, want ErrForbidden", err)
	}
	if len(log.calls) != 0 || len(media.putKeys) != 0 || len(geocoder.addresses) != 0 {
		t.Errorf("denied update must cause no side effects, calls = %v", log.calls)
	}
}

func TestOrganizationUpdateThrottled(t *testing.T) {
	svc, orgs, _, _, _, _, _ := newOrgFixture()

	tenDaysAgo := fixedNow().AddDate(0, 0, -10)
	orgs.org = &types.Organization{ID: "org-1", LastChangeAt: &tenDaysAgo}

	_, err := svc.Update(context.Background(), "org-1", "org-1", UpdateOrganizationInput{
		Phone: utils.StringPtr("11999990000"),
	})

	var throttled *types.ThrottledError
	if !errors.As(err, &throttled) {
		t.Fatalf("Update() error = %v, want ThrottledError", err)
	}
	if throttled.DaysRemaining != 21 {
		t.Errorf("DaysRemaining = %d, want 21", throttled.DaysRemaining)
	}
	if orgs.lastPatch != nil {
		t.Error("throttled update must not write")
	}
}

func TestOrganizationUpdateEligibleAfterCooldown(t *testing.T) {
	svc, orgs, _, _, _, _, _ := newOrgFixture()

	old := fixedNow().AddDate(0, 0, -31)
	orgs.org = &types.Organization{ID: "org-1", LastChangeAt: &old}

	_, err := svc.Update(context.Background(), "org-1", "org-1", UpdateOrganizationInput{
		Phone: utils.StringPtr("11999990000"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	columns := orgs.lastPatch.Columns()
	if columns[0] != "telefone" {
		t.Errorf("columns = %v, want telefone first", columns)
	}
	if columns[len(columns)-1] != "data_ultima_alteracao" {
		t.Errorf("columns = %v, want the cooldown clock advanced in the same write", columns)
	}
	if len(columns) != 2 {
		t.Errorf("columns = %v, want exactly the requested field plus the timestamp", columns)
	}
}

func TestOrganizationUpdateEmpty(t *testing.T) {
	svc, orgs, _, _, _, _, log := newOrgFixture()
	orgs.org = &types.Organization{ID: "org-1"}

	_, err := svc.Update(context.Background(), "org-1", "org-1", UpdateOrganizationInput{})
	if !errors.Is(err, types.ErrEmptyPatch) {
		t.Fatalf("Update() error = %v, want ErrEmptyPatch", err)
	}
	if len(log.calls) != 0 {
		t.Errorf("empty update must not reach any collaborator, calls = %v", log.calls)
	}
}

func TestOrganizationUpdateImageReplacement(t *testing.T) {
	svc, orgs, _, _, media, _, log := newOrgFixture()

	oldURL := "https://bucket.s3.sa-east-1.amazonaws.com/old-logo.png"
	orgs.org = &types.Organization{ID: "org-1", ImageURL: &oldURL}

	_, err := svc.Update(context.Background(), "org-1", "org-1", UpdateOrganizationInput{
		Image: &types.Upload{File: strings.NewReader("img"), FileName: "new-logo.png", ContentType: "image/png", SizeBytes: 3},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(media.putKeys) != 1 || len(media.deleteKeys) != 1 {
		t.Fatalf("puts = %v, deletes = %v, want exactly one of each", media.putKeys, media.deleteKeys)
	}
	if media.deleteKeys[0] != "old-logo.png" {
		t.Errorf("deleted key = %q, want the old object's derived key", media.deleteKeys[0])
	}

	// store new -> write record -> drop old, strictly in that order
	want := []string{"orgs.Organization", "media.Put", "orgs.Update", "media.Delete"}
	if len(log.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", log.calls, want)
	}
	for i := range want {
		if log.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", log.calls, want)
		}
	}
}

func TestOrganizationUpdateGeocodeSoftFailure(t *testing.T) {
	svc, orgs, _, _, _, geocoder, _ := newOrgFixture()
	orgs.org = &types.Organization{ID: "org-1", Street: "Rua A", Number: "10", District: "Centro", City: "Curitiba", PostalCode: "80000000"}
	geocoder.coords = nil

	_, err := svc.Update(context.Background(), "org-1", "org-1", UpdateOrganizationInput{
		City: utils.StringPtr("Londrina"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v, unresolved address must not fail an update", err)
	}

	for _, column := range orgs.lastPatch.Columns() {
		if column == "latitude" || column == "longitude" {
			t.Errorf("columns = %v, coordinates must stay untouched", orgs.lastPatch.Columns())
		}
	}

	if got := geocoder.addresses[0]; got != "Rua A, 10, Centro, Londrina, 80000000" {
		t.Errorf("geocoded address = %q, want changed fields merged over stored values", got)
	}
}

func TestOrganizationDeleteCascades(t *testing.T) {
	svc, orgs, campaigns, locations, media, _, _ := newOrgFixture()

	orgImg := "https://bucket.s3.sa-east-1.amazonaws.com/org.png"
	campImg := "https://bucket.s3.sa-east-1.amazonaws.com/camp.png"
	orgs.org = &types.Organization{ID: "org-1", ImageURL: &orgImg}
	campaigns.byOrg = []*types.Campaign{{ID: "camp-1", OrganizationID: "org-1", ImageURL: &campImg}}
	locations.byOrg = []*types.Location{{ID: "loc-1", OrganizationID: "org-1"}}

	if err := svc.Delete(context.Background(), "org-1", "org-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(campaigns.deleted) != 1 || campaigns.deleted[0] != "camp-1" {
		t.Errorf("campaign cascade = %v", campaigns.deleted)
	}
	if len(locations.deleted) != 1 || locations.deleted[0] != "loc-1" {
		t.Errorf("location cascade = %v", locations.deleted)
	}
	if len(orgs.deleted) != 1 {
		t.Errorf("organization delete = %v", orgs.deleted)
	}
	if len(media.deleteKeys) != 2 {
		t.Errorf("media deletes = %v, want org and campaign blobs released", media.deleteKeys)
	}
}

func TestOrganizationDeleteDeniedForNonOwner(t *testing.T) {
	svc, _, _, _, media, _, log := newOrgFixture()

	if err := svc.Delete(context.Background(), "org-2", "org-1"); !errors.Is(err, types.ErrForbidden) {
		t.Fatalf("Delete() error = %v, want ErrForbidden", err)
	}
	if len(log.calls) != 0 || len(media.deleteKeys) != 0 {
		t.Errorf("denied delete must cause no side effects, calls = %v", log.calls)
	}
}
