package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wedonate/internal/utils"
	"wedonate/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const locationTableName = "locais"

var locationColumns = utils.StructTagValues(types.Location{})

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) Location(ctx context.Context, id string) (*types.Location, error) {
	query, args, err := psql().
		Select(locationColumns...).
		From(locationTableName).
		Where(sq.Eq{"id_local": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate location query: %w", err)
	}

	var location types.Location
	err = pgxscan.Get(ctx, r.pool, &location, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to fetch location: %w", err)
	}

	return &location, nil
}

func (r *LocationRepository) Locations(ctx context.Context) ([]*types.Location, error) {
	query, args, err := psql().
		Select(locationColumns...).
		From(locationTableName).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate locations query: %w", err)
	}

	locations := make([]*types.Location, 0)
	err = pgxscan.Select(ctx, r.pool, &locations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	return locations, nil
}

func (r *LocationRepository) LocationsByOrganization(ctx context.Context, orgID string) ([]*types.Location, error) {
	query, args, err := psql().
		Select(locationColumns...).
		From(locationTableName).
		Where(sq.Eq{"id_org_cadastro": orgID}).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate locations-by-organization query: %w", err)
	}

	locations := make([]*types.Location, 0)
	err = pgxscan.Select(ctx, r.pool, &locations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations by organization: %w", err)
	}

	return locations, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *types.Location) error {
	location.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(locationTableName).
		SetMap(utils.StructToMap(location)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create location query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	return nil
}

func (r *LocationRepository) Update(ctx context.Context, id string, patch *Patch) (*types.Location, error) {
	builder, err := patch.Apply(psql().Update(locationTableName))
	if err != nil {
		return nil, err
	}

	query, args, err := builder.
		Where(sq.Eq{"id_local": id}).
		Suffix("RETURNING " + strings.Join(locationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update location query: %w", err)
	}

	var location types.Location
	err = pgxscan.Get(ctx, r.pool, &location, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return &location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().
		Delete(locationTableName).
		Where(sq.Eq{"id_local": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete location query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrLocationNotFound
	}

	return nil
}
