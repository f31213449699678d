package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Soft-deleted rows are invisible to every query here.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, owner_id, name, platform, budget, status, deleted, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	var status string
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Platform, &c.Budget, &status, &c.Deleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status, err = domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign returns a campaign by id, or nil when absent or soft-deleted.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND NOT deleted`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByOwner returns the owner's campaigns, newest first, optionally
// filtered by status.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string, status *domain.Status) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE owner_id = $1 AND NOT deleted`
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListByStatus returns all campaigns in any of the given statuses.
func (r *CampaignRepository) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Campaign, error) {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE status = ANY($1) AND NOT deleted ORDER BY created_at DESC`,
		ss)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// CreateCampaign inserts a new campaign and fills in its timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, owner_id, name, platform, budget, status, deleted, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,false,$7,$8)`,
		c.ID, c.OwnerID, c.Name, c.Platform, c.Budget, string(c.Status), c.CreatedAt, c.UpdatedAt)
	return err
}

// UpdateStatus sets the campaign's status and bumps updated_at. Updating an
// unknown or soft-deleted campaign returns port.ErrNotFound.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND NOT deleted`,
		string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// UpdateFields applies explicit user edits to descriptive attributes.
func (r *CampaignRepository) UpdateFields(ctx context.Context, id string, name, platform string, budget int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET name = $1, platform = $2, budget = $3, updated_at = now()
		 WHERE id = $4 AND NOT deleted`,
		name, platform, budget, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SoftDelete marks the campaign deleted without removing the row.
func (r *CampaignRepository) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET deleted = true, updated_at = now() WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
