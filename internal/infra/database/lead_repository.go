package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/prospecta/prospecta-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// BulkInsert grava todos os leads qualificados em um único INSERT.
// Lista vazia é no-op e devolve 0 (não é erro).
func (r *LeadRepository) BulkInsert(ctx context.Context, leads []*entity.Lead) (int, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO leads (id, user_id, campaign_id, company_name, website, score, status, reasoning, created_at)
		VALUES `)

	args := make([]interface{}, 0, len(leads)*9)
	for i, lead := range leads {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 9
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))

		args = append(args,
			lead.ID,
			lead.UserID,
			lead.CampaignID,
			lead.CompanyName,
			nullString(lead.Website),
			lead.Score,
			lead.Status,
			nullString(lead.Reasoning),
			lead.CreatedAt,
		)
	}

	_, err := r.DB.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Printf("❌ Banco rejeitou insert de leads (code %s): %s", pgErr.Code, pgErr.Message)
		} else {
			log.Printf("Erro crítico no banco: %v", err)
		}
		return 0, err
	}

	return len(leads), nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, user_id, campaign_id, company_name, COALESCE(website, ''),
		       score, status, COALESCE(reasoning, ''), created_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.UserID,
		&lead.CampaignID,
		&lead.CompanyName,
		&lead.Website,
		&lead.Score,
		&lead.Status,
		&lead.Reasoning,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, user_id, campaign_id, company_name, COALESCE(website, ''),
		       score, status, COALESCE(reasoning, ''), created_at
		FROM leads
		WHERE campaign_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.UserID,
			&lead.CampaignID,
			&lead.CompanyName,
			&lead.Website,
			&lead.Score,
			&lead.Status,
			&lead.Reasoning,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $1 WHERE id = $2`, status, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Stats alimenta o dashboard com os agregados do usuário
func (r *LeadRepository) Stats(ctx context.Context, userID string) (*entity.DashboardStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'qualified'),
		       COALESCE(AVG(score), 0)
		FROM leads
		WHERE user_id = $1
	`

	var stats entity.DashboardStats
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalLeads,
		&stats.QualifiedLeads,
		&stats.AverageScore,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
