package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedonate/internal/utils"
	"wedonate/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const organizationTableName = "organizacoes"

const pgUniqueViolation = "23505"

var organizationColumns = utils.StructTagValues(types.Organization{})

type OrganizationRepository struct {
	pool *pgxpool.Pool
}

func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{pool: pool}
}

func (r *OrganizationRepository) Organization(ctx context.Context, id string) (*types.Organization, error) {
	query, args, err := psql().
		Select(organizationColumns...).
		From(organizationTableName).
		Where(sq.Eq{"id_organizacao": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization query: %w", err)
	}

	var org types.Organization
	err = pgxscan.Get(ctx, r.pool, &org, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}

	return &org, nil
}

func (r *OrganizationRepository) OrganizationByCNPJ(ctx context.Context, cnpj string) (*types.Organization, error) {
	query, args, err := psql().
		Select(organizationColumns...).
		From(organizationTableName).
		Where(sq.Eq{"cnpj": cnpj}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization-by-cnpj query: %w", err)
	}

	var org types.Organization
	err = pgxscan.Get(ctx, r.pool, &org, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to fetch organization by cnpj: %w", err)
	}

	return &org, nil
}

func (r *OrganizationRepository) Organizations(ctx context.Context) ([]*types.Organization, error) {
	query, args, err := psql().
		Select(organizationColumns...).
		From(organizationTableName).
		OrderBy("nome_organizacao ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organizations query: %w", err)
	}

	orgs := make([]*types.Organization, 0)
	err = pgxscan.Select(ctx, r.pool, &orgs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	return orgs, nil
}

func (r *OrganizationRepository) SearchByName(ctx context.Context, name string) ([]*types.Organization, error) {
	query, args, err := psql().
		Select(organizationColumns...).
		From(organizationTableName).
		Where(sq.ILike{"nome_organizacao": "%" + name + "%"}).
		OrderBy("nome_organizacao ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization search query: %w", err)
	}

	orgs := make([]*types.Organization, 0)
	err = pgxscan.Select(ctx, r.pool, &orgs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}

	return orgs, nil
}

// ExistsByEmailOrCNPJ reports whether either unique key is already taken.
func (r *OrganizationRepository) ExistsByEmailOrCNPJ(ctx context.Context, email, cnpj string) (bool, error) {
	query, args, err := psql().
		Select("id_organizacao").
		From(organizationTableName).
		Where(sq.Or{sq.Eq{"email": email}, sq.Eq{"cnpj": cnpj}}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate organization exists query: %w", err)
	}

	var id string
	err = pgxscan.Get(ctx, r.pool, &id, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check organization uniqueness: %w", err)
	}

	return true, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, org *types.Organization) error {
	org.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(organizationTableName).
		SetMap(utils.StructToMap(org)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create organization query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return types.ErrConflict
		}
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, id string, patch *Patch) (*types.Organization, error) {
	builder, err := patch.Apply(psql().Update(organizationTableName))
	if err != nil {
		return nil, err
	}

	query, args, err := builder.
		Where(sq.Eq{"id_organizacao": id}).
		Suffix("RETURNING " + strings.Join(organizationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update organization query: %w", err)
	}

	var org types.Organization
	err = pgxscan.Get(ctx, r.pool, &org, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrOrganizationNotFound
		}
		if isUniqueViolation(err) {
			return nil, types.ErrConflict
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return &org, nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().
		Delete(organizationTableName).
		Where(sq.Eq{"id_organizacao": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete organization query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrOrganizationNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
