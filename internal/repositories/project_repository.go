package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"podium/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, project_name, client_name, client_email, company, event_date, status,
	budget, speaker_fee, actual_revenue, commission_percentage, commission_amount,
	payment_status, payment_date, COALESCE(financial_notes, ''),
	COALESCE(stage_completion, '{}'), created_at, updated_at`

func scanProject(s rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := s.Scan(
		&p.ID, &p.ProjectName, &p.ClientName, &p.ClientEmail, &p.Company, &p.EventDate, &p.Status,
		&p.Budget, &p.SpeakerFee, &p.ActualRevenue, &p.CommissionPercentage, &p.CommissionAmount,
		&p.PaymentStatus, &p.PaymentDate, &p.FinancialNotes,
		&p.StageCompletion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(p *models.Project) (int64, error) {
	query := `
        INSERT INTO projects (project_name, client_name, client_email, company, event_date,
            status, budget, speaker_fee, actual_revenue, commission_percentage,
            commission_amount, payment_status, stage_completion, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(
		query,
		p.ProjectName,
		p.ClientName,
		p.ClientEmail,
		p.Company,
		p.EventDate,
		p.Status,
		p.Budget,
		p.SpeakerFee,
		p.ActualRevenue,
		p.CommissionPercentage,
		p.CommissionAmount,
		p.PaymentStatus,
		p.StageCompletion,
		p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

func (r *ProjectRepository) GetByID(id int) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) Update(p *models.Project) error {
	query := `
        UPDATE projects
        SET project_name=$1, client_name=$2, client_email=$3, company=$4, event_date=$5,
            financial_notes=$6, updated_at=NOW()
        WHERE id=$7
    `
	_, err := r.db.Exec(query,
		p.ProjectName, p.ClientName, p.ClientEmail, p.Company, p.EventDate,
		p.FinancialNotes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) UpdateFinance(p *models.Project) error {
	query := `
        UPDATE projects
        SET budget=$1, speaker_fee=$2, actual_revenue=$3, commission_percentage=$4,
            commission_amount=$5, payment_status=$6, payment_date=$7, financial_notes=$8,
            updated_at=NOW()
        WHERE id=$9
    `
	_, err := r.db.Exec(query,
		p.Budget, p.SpeakerFee, p.ActualRevenue, p.CommissionPercentage,
		p.CommissionAmount, p.PaymentStatus, p.PaymentDate, p.FinancialNotes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project finance: %w", err)
	}
	return nil
}

func (r *ProjectRepository) UpdateStatus(id int, status string) error {
	const q = `UPDATE projects SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(q, status, id)
	return err
}

func (r *ProjectRepository) UpdateStageCompletion(id int, stages models.StageCompletion) error {
	const q = `UPDATE projects SET stage_completion = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(q, stages, id)
	if err != nil {
		return fmt.Errorf("update stage completion: %w", err)
	}
	return nil
}

// Delete is a real hard delete, unlike deals.
func (r *ProjectRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project with id=%d not found", id)
	}
	return nil
}

// SyncFinanceFromDeal pushes a deal's figures onto every project for the same
// company and client whose event date or project name matches the deal's
// event. Values are overwritten unconditionally. Returns the number touched.
func (r *ProjectRepository) SyncFinanceFromDeal(d *models.Deal) (int64, error) {
	query := `
        UPDATE projects
        SET budget=$1, commission_percentage=$2, commission_amount=$3,
            payment_status=$4, payment_date=$5, updated_at=NOW()
        WHERE company = $6
          AND client_name = $7
          AND (event_date = $8 OR project_name = $9)
    `
	res, err := r.db.Exec(query,
		d.DealValue, d.CommissionPercentage, d.CommissionAmount,
		d.PaymentStatus, d.PaymentDate,
		d.Company, d.ClientName, d.EventDate, d.EventTitle,
	)
	if err != nil {
		return 0, fmt.Errorf("sync projects from deal: %w", err)
	}
	return res.RowsAffected()
}

// FindMatch returns the first project matching the cross-sync heuristic, or
// nil. Natural ordering decides between multiple candidates.
func (r *ProjectRepository) FindMatch(company, clientName, eventDate, eventTitle string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
        WHERE company = $1 AND client_name = $2 AND (event_date = $3 OR project_name = $4)
        LIMIT 1`
	p, err := scanProject(r.db.QueryRow(query, company, clientName, eventDate, eventTitle))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find matching project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) ListByCompany(company string) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE company = $1 ORDER BY created_at DESC`
	return r.queryProjects(query, company)
}

func (r *ProjectRepository) ListPaginated(limit, offset int) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProjects(query, limit, offset)
}

func (r *ProjectRepository) queryProjects(query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// RecomputeAggregates re-derives each linked project's financial fields from
// its won deals: revenue as SUM, commission percentage as AVG, commission as
// SUM, payment status by priority paid > partial > pending.
func (r *ProjectRepository) RecomputeAggregates() (int64, error) {
	query := `
        UPDATE projects p
        SET actual_revenue = agg.total_value,
            commission_percentage = agg.avg_pct,
            commission_amount = agg.total_commission,
            payment_status = agg.pay_status,
            updated_at = NOW()
        FROM (
            SELECT d.project_id,
                   COALESCE(SUM(d.deal_value), 0)            AS total_value,
                   COALESCE(AVG(d.commission_percentage), 0) AS avg_pct,
                   COALESCE(SUM(d.commission_amount), 0)     AS total_commission,
                   CASE
                       WHEN BOOL_OR(d.payment_status = 'paid')    THEN 'paid'
                       WHEN BOOL_OR(d.payment_status = 'partial') THEN 'partial'
                       ELSE 'pending'
                   END AS pay_status
            FROM deals d
            WHERE d.status = 'won' AND d.project_id IS NOT NULL
            GROUP BY d.project_id
        ) agg
        WHERE p.id = agg.project_id
    `
	res, err := r.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("recompute project aggregates: %w", err)
	}
	return res.RowsAffected()
}

// FeeMigrationCandidates lists non-cancelled projects with a budget, optionally
// restricted to the given ids.
func (r *ProjectRepository) FeeMigrationCandidates(ids []int) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
        WHERE status <> 'cancelled' AND budget > 0`
	args := []interface{}{}
	if len(ids) > 0 {
		query += ` AND id = ANY($1)`
		args = append(args, pq.Array(ids))
	}
	query += ` ORDER BY id`
	return r.queryProjects(query, args...)
}

func (r *ProjectRepository) UpdateSpeakerFee(id int, fee float64) error {
	const q = `UPDATE projects SET speaker_fee = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(q, fee, id)
	if err != nil {
		return fmt.Errorf("update speaker fee: %w", err)
	}
	return nil
}

func (r *ProjectRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count projects by status: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
