package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/prospecta/prospecta-api/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, i *entity.LeadInteraction) error {
	query := `
		INSERT INTO lead_interactions (id, lead_id, user_id, type, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		i.ID,
		i.LeadID,
		i.UserID,
		i.Type,
		i.Content,
		i.CreatedAt,
	)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *InteractionRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.LeadInteraction, error) {
	query := `
		SELECT id, lead_id, user_id, type, content, created_at
		FROM lead_interactions
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := []*entity.LeadInteraction{}
	for rows.Next() {
		var i entity.LeadInteraction
		if err := rows.Scan(&i.ID, &i.LeadID, &i.UserID, &i.Type, &i.Content, &i.CreatedAt); err != nil {
			return nil, err
		}
		interactions = append(interactions, &i)
	}

	return interactions, rows.Err()
}
