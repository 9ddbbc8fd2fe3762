package seed

import (
	"context"
	"errors"
	"fmt"

	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"
)

// SeedLocations inserts demo donation points owned by the seeded
// organizations. Run SeedOrganizations first.
func SeedLocations(ctx context.Context, repo *store.LocationRepository) error {
	locations := []types.Location{
		{
			ID:                "cV2xNb7QtM4rJzKwP8dFh",
			OrganizationID:    "Xx3jlOJ0R4zpiV8nQyCWM",
			Name:              "Ponto de Coleta Centro",
			Address:           "Rua XV de Novembro, 1500, Centro, Curitiba",
			Latitude:          -25.4284,
			Longitude:         -49.2733,
			Description:       utils.StringPtr("Recebe alimentos não perecíveis e roupas"),
			Category:          utils.StringPtr("alimentos"),
			Phone:             utils.StringPtr("4133221100"),
			OperationalStatus: utils.StringPtr("aberto"),
		},
		{
			ID:                "hJ6sGm1WrE9yLcXvT3kBp",
			OrganizationID:    "pR7KfW2tUq9bDhVgE5mNa",
			Name:              "Ponto de Coleta Água Verde",
			Address:           "Avenida Água Verde, 890, Água Verde, Curitiba",
			Latitude:          -25.4547,
			Longitude:         -49.2856,
			Description:       utils.StringPtr("Recebe agasalhos e cobertores"),
			Category:          utils.StringPtr("roupas"),
			Phone:             utils.StringPtr("4130405060"),
			OperationalStatus: utils.StringPtr("aberto"),
		},
	}

	created := 0
	for i := range locations {
		location := &locations[i]

		_, err := repo.Location(ctx, location.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrLocationNotFound) {
			return fmt.Errorf("failed to check location %s: %w", location.ID, err)
		}

		if err := repo.Create(ctx, location); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", location.ID, err)
		}
		created++
	}

	fmt.Printf("Locations seeded: %d created\n", created)

	return nil
}
