package seed

import (
	"context"
	"errors"
	"fmt"

	"wedonate/internal/auth"
	"wedonate/internal/store"
	"wedonate/internal/utils"
	"wedonate/pkg/types"

	"github.com/k0kubun/pp/v3"
)

// demoPassword is shared by every seeded organization so local logins are
// predictable. Never run the seed against a real environment.
const demoPassword = "Doacao@2026"

// SeedOrganizations inserts the demo organizations below, skipping any that
// already exist. IDs are fixed so campaigns and locations can reference them.
//
// To generate new IDs: `go run ./cmd/wedonate nanoid`
func SeedOrganizations(ctx context.Context, repo *store.OrganizationRepository) error {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	organizations := []types.Organization{
		{
			ID:           "Xx3jlOJ0R4zpiV8nQyCWM",
			Name:         "Instituto Mãos Solidárias",
			CNPJ:         "12345678000195",
			Email:        "contato@maossolidarias.org.br",
			PasswordHash: hash,
			Phone:        utils.StringPtr("4133221100"),
			Description:  utils.StringPtr("Arrecadação e distribuição de alimentos na região central"),
			PostalCode:   "80010000",
			Street:       "Rua XV de Novembro",
			Number:       "1500",
			District:     "Centro",
			City:         "Curitiba",
			Latitude:     -25.4284,
			Longitude:    -49.2733,
		},
		{
			ID:           "pR7KfW2tUq9bDhVgE5mNa",
			Name:         "Associação Abrigo Esperança",
			CNPJ:         "11444777000161",
			Email:        "abrigo@esperanca.org.br",
			PasswordHash: hash,
			Phone:        utils.StringPtr("4130405060"),
			Description:  utils.StringPtr("Abrigo e agasalhos para pessoas em situação de rua"),
			PostalCode:   "80240000",
			Street:       "Avenida Água Verde",
			Number:       "890",
			District:     "Água Verde",
			City:         "Curitiba",
			Latitude:     -25.4547,
			Longitude:    -49.2856,
		},
	}

	created := 0
	for i := range organizations {
		org := &organizations[i]

		_, err := repo.Organization(ctx, org.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrOrganizationNotFound) {
			return fmt.Errorf("failed to check organization %s: %w", org.ID, err)
		}

		if err := repo.Create(ctx, org); err != nil {
			return fmt.Errorf("failed to seed organization %s: %w", org.ID, err)
		}

		pp.Println(org)
		created++
	}

	fmt.Printf("Organizations seeded: %d created\n", created)

	return nil
}
