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

const campaignTableName = "campanhas"

var campaignColumns = utils.StructTagValues(types.Campaign{})

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) Campaign(ctx context.Context, id string) (*types.Campaign, error) {
	query, args, err := psql().
		Select(campaignColumns...).
		From(campaignTableName).
		Where(sq.Eq{"id_campanha": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign query: %w", err)
	}

	var campaign types.Campaign
	err = pgxscan.Get(ctx, r.pool, &campaign, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}

	return &campaign, nil
}

func (r *CampaignRepository) Campaigns(ctx context.Context) ([]*types.Campaign, error) {
	query, args, err := psql().
		Select(campaignColumns...).
		From(campaignTableName).
		OrderBy("data_criacao DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaigns query: %w", err)
	}

	campaigns := make([]*types.Campaign, 0)
	err = pgxscan.Select(ctx, r.pool, &campaigns, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) CampaignsByOrganization(ctx context.Context, orgID string) ([]*types.Campaign, error) {
	query, args, err := psql().
		Select(campaignColumns...).
		From(campaignTableName).
		Where(sq.Eq{"id_organizacao_criadora": orgID}).
		OrderBy("data_criacao DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaigns-by-organization query: %w", err)
	}

	campaigns := make([]*types.Campaign, 0)
	err = pgxscan.Select(ctx, r.pool, &campaigns, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns by organization: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) SearchByTitle(ctx context.Context, title string) ([]*types.Campaign, error) {
	query, args, err := psql().
		Select(campaignColumns...).
		From(campaignTableName).
		Where(sq.ILike{"titulo": "%" + title + "%"}).
		OrderBy("data_criacao DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign search query: %w", err)
	}

	campaigns := make([]*types.Campaign, 0)
	err = pgxscan.Select(ctx, r.pool, &campaigns, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *types.Campaign) error {
	campaign.CreatedAt = time.Now()

	query, args, err := psql().
		Insert(campaignTableName).
		SetMap(utils.StructToMap(campaign)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create campaign query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, id string, patch *Patch) (*types.Campaign, error) {
	builder, err := patch.Apply(psql().Update(campaignTableName))
	if err != nil {
		return nil, err
	}

	query, args, err := builder.
		Where(sq.Eq{"id_campanha": id}).
		Suffix("RETURNING " + strings.Join(campaignColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update campaign query: %w", err)
	}

	var campaign types.Campaign
	err = pgxscan.Get(ctx, r.pool, &campaign, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return &campaign, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().
		Delete(campaignTableName).
		Where(sq.Eq{"id_campanha": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete campaign query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrCampaignNotFound
	}

	return nil
}
