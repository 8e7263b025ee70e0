package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/prospecta/prospecta-api/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, user_id, name, query, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Query,
		c.Status,
		c.CreatedAt,
	)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

// FindByID é o point lookup que resolve o dono da campanha antes do pipeline
func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	query := `
		SELECT id, user_id, name, query, status, created_at
		FROM campaigns
		WHERE id = $1
	`

	var c entity.Campaign
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Query,
		&c.Status,
		&c.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCampaignNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *CampaignRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM campaigns WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}
