package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"
)

// SeedCampaigns inserts demo campaigns owned by the seeded organizations.
// Run SeedOrganizations first.
func SeedCampaigns(ctx context.Context, repo *store.CampaignRepository) error {
	now := time.Now()

	campaigns := []types.Campaign{
		{
			ID:             "bT5wYc8LzJ3mHxAqF1kRs",
			OrganizationID: "Xx3jlOJ0R4zpiV8nQyCWM",
			Title:          "Campanha do Agasalho 2026",
			Description:    utils.StringPtr("Arrecadação de roupas de inverno para famílias da região"),
			NeededItems:    utils.StringPtr("casacos, cobertores, meias, luvas"),
			VenueAddress:   "Praça Tiradentes, Centro, Curitiba",
			StartDate:      now,
			EndDate:        utils.TimePtr(now.AddDate(0, 2, 0)),
			Status:         types.CampaignStatusActive,
		},
		{
			ID:             "nG9vZd4PsK6eWyBqM2jTu",
			OrganizationID: "pR7KfW2tUq9bDhVgE5mNa",
			Title:          "Natal Sem Fome",
			Description:    utils.StringPtr("Cestas básicas para a ceia de Natal"),
			NeededItems:    utils.StringPtr("arroz, feijão, óleo, panetone"),
			VenueAddress:   "Rua da Cidadania, Água Verde, Curitiba",
			StartDate:      now,
			Status:         types.CampaignStatusActive,
		},
	}

	created := 0
	for i := range campaigns {
		campaign := &campaigns[i]

		_, err := repo.Campaign(ctx, campaign.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrCampaignNotFound) {
			return fmt.Errorf("failed to check campaign %s: %w", campaign.ID, err)
		}

		if err := repo.Create(ctx, campaign); err != nil {
			return fmt.Errorf("failed to seed campaign %s: %w", campaign.ID, err)
		}
		created++
	}

	fmt.Printf("Campaigns seeded: %d created\n", created)

	return nil
}
