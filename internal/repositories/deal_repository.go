package repositories

import (
	"database/sql"
	"fmt"

	"podium/internal/models"
)

type DealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

const dealColumns = `id, client_name, client_email, company, event_title, event_date,
	COALESCE(message, ''), status,
	deal_value, commission_percentage, commission_amount, payment_status, payment_date,
	COALESCE(invoice_number, ''), COALESCE(contract_link, ''),
	COALESCE(invoice_link_1, ''), COALESCE(invoice_link_2, ''), COALESCE(notes, ''),
	project_id, owner_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(s rowScanner) (*models.Deal, error) {
	d := &models.Deal{}
	err := s.Scan(
		&d.ID, &d.ClientName, &d.ClientEmail, &d.Company, &d.EventTitle, &d.EventDate,
		&d.Message, &d.Status,
		&d.DealValue, &d.CommissionPercentage, &d.CommissionAmount, &d.PaymentStatus, &d.PaymentDate,
		&d.InvoiceNumber, &d.ContractLink, &d.InvoiceLink1, &d.InvoiceLink2, &d.Notes,
		&d.ProjectID, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DealRepository) Create(deal *models.Deal) (int64, error) {
	query := `
        INSERT INTO deals (client_name, client_email, company, event_title, event_date, message,
            status, deal_value, commission_percentage, commission_amount, payment_status,
            owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(
		query,
		deal.ClientName,
		deal.ClientEmail,
		deal.Company,
		deal.EventTitle,
		deal.EventDate,
		deal.Message,
		deal.Status,
		deal.DealValue,
		deal.CommissionPercentage,
		deal.CommissionAmount,
		deal.PaymentStatus,
		deal.OwnerID,
		deal.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create deal: %w", err)
	}
	return id, nil
}

func (r *DealRepository) GetByID(id int) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	deal, err := scanDeal(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deal by id: %w", err)
	}
	return deal, nil
}

func (r *DealRepository) Update(deal *models.Deal) error {
	query := `
        UPDATE deals
        SET client_name=$1, client_email=$2, company=$3, event_title=$4, event_date=$5,
            message=$6, notes=$7, updated_at=NOW()
        WHERE id=$8
    `
	_, err := r.db.Exec(query,
		deal.ClientName, deal.ClientEmail, deal.Company, deal.EventTitle, deal.EventDate,
		deal.Message, deal.Notes, deal.ID,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

// UpdateFinance writes the finance-form fields plus the project back-reference.
func (r *DealRepository) UpdateFinance(deal *models.Deal) error {
	query := `
        UPDATE deals
        SET deal_value=$1, commission_percentage=$2, commission_amount=$3,
            payment_status=$4, payment_date=$5,
            invoice_number=$6, contract_link=$7, invoice_link_1=$8, invoice_link_2=$9,
            notes=$10, project_id=$11, updated_at=NOW()
        WHERE id=$12
    `
	_, err := r.db.Exec(query,
		deal.DealValue, deal.CommissionPercentage, deal.CommissionAmount,
		deal.PaymentStatus, deal.PaymentDate,
		deal.InvoiceNumber, deal.ContractLink, deal.InvoiceLink1, deal.InvoiceLink2,
		deal.Notes, deal.ProjectID, deal.ID,
	)
	if err != nil {
		return fmt.Errorf("update deal finance: %w", err)
	}
	return nil
}

func (r *DealRepository) UpdateStatus(id int, status string) error {
	const q = `UPDATE deals SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(q, status, id)
	return err
}

func (r *DealRepository) SetProjectID(dealID int, projectID int) error {
	const q = `UPDATE deals SET project_id = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(q, projectID, dealID)
	return err
}

// SyncFinanceFromProject pushes a project's financial figures onto every won
// deal for the same company and client whose event date or title matches.
// Returns the number of deals touched.
func (r *DealRepository) SyncFinanceFromProject(p *models.Project) (int64, error) {
	query := `
        UPDATE deals
        SET deal_value=$1, commission_percentage=$2, commission_amount=$3,
            payment_status=$4, payment_date=$5, updated_at=NOW()
        WHERE status = 'won'
          AND company = $6
          AND client_name = $7
          AND (event_date = $8 OR event_title = $9)
    `
	base := p.ActualRevenue
	if base <= 0 {
		base = p.Budget
	}
	res, err := r.db.Exec(query,
		base, p.CommissionPercentage, p.CommissionAmount,
		p.PaymentStatus, p.PaymentDate,
		p.Company, p.ClientName, p.EventDate, p.ProjectName,
	)
	if err != nil {
		return 0, fmt.Errorf("sync deals from project: %w", err)
	}
	return res.RowsAffected()
}

// FindMatchWon returns the first won deal matching the cross-sync heuristic,
// or nil. Natural ordering decides between multiple candidates.
func (r *DealRepository) FindMatchWon(company, clientName, eventDate, eventTitle string) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals
        WHERE status = 'won' AND company = $1 AND client_name = $2
          AND (event_date = $3 OR event_title = $4)
        LIMIT 1`
	deal, err := scanDeal(r.db.QueryRow(query, company, clientName, eventDate, eventTitle))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find matching deal: %w", err)
	}
	return deal, nil
}

func (r *DealRepository) ListByCompany(company string) ([]*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE company = $1 ORDER BY created_at DESC`
	return r.queryDeals(query, company)
}

func (r *DealRepository) ListPaginated(limit, offset int) ([]*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryDeals(query, limit, offset)
}

func (r *DealRepository) queryDeals(query string, args ...interface{}) ([]*models.Deal, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query deals: %w", err)
	}
	defer rows.Close()

	var deals []*models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}

func (r *DealRepository) FilterDeals(status, fromDate, toDate, sortBy, order string, valueMin, valueMax float64, limit, offset int) ([]*models.Deal, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	allowedSortFields := map[string]bool{
		"created_at": true,
		"event_date": true,
		"deal_value": true,
		"status":     true,
	}
	if !allowedSortFields[sortBy] {
		sortBy = "created_at"
	}

	query := `SELECT ` + dealColumns + ` FROM deals WHERE 1=1`
	args := []interface{}{}
	i := 1

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, status)
		i++
	}
	if fromDate != "" {
		query += fmt.Sprintf(" AND event_date >= $%d", i)
		args = append(args, fromDate)
		i++
	}
	if toDate != "" {
		query += fmt.Sprintf(" AND event_date <= $%d", i)
		args = append(args, toDate)
		i++
	}
	if valueMin > 0 {
		query += fmt.Sprintf(" AND deal_value >= $%d", i)
		args = append(args, valueMin)
		i++
	}
	if valueMax > 0 {
		query += fmt.Sprintf(" AND deal_value <= $%d", i)
		args = append(args, valueMax)
		i++
	}

	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, order, i, i+1)
	args = append(args, limit, offset)

	return r.queryDeals(query, args...)
}

// LinkUnlinkedWon attaches every won deal without a project to the project
// with the same client email and the nearest event date. One bulk statement;
// deals with no candidate project stay unlinked.
func (r *DealRepository) LinkUnlinkedWon() (int64, error) {
	query := `
        UPDATE deals d
        SET project_id = sub.pid, updated_at = NOW()
        FROM (
            SELECT d2.id AS did,
                   (SELECT p.id
                    FROM projects p
                    WHERE p.client_email = d2.client_email
                    ORDER BY ABS(NULLIF(p.event_date, '')::date - NULLIF(d2.event_date, '')::date)
                    LIMIT 1) AS pid
            FROM deals d2
            WHERE d2.status = 'won' AND d2.project_id IS NULL
        ) sub
        WHERE d.id = sub.did AND sub.pid IS NOT NULL
    `
	res, err := r.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("link won deals: %w", err)
	}
	return res.RowsAffected()
}

// SyncStatusRows returns one row per won deal with its linked project's
// payment status, for the sync report.
func (r *DealRepository) SyncStatusRows() ([]models.SyncStatusRow, error) {
	query := `
        SELECT d.id, d.client_name, d.company, d.deal_value, d.payment_status,
               d.project_id, p.project_name, p.payment_status
        FROM deals d
        LEFT JOIN projects p ON p.id = d.project_id
        WHERE d.status = 'won'
        ORDER BY d.id
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("sync status query: %w", err)
	}
	defer rows.Close()

	var out []models.SyncStatusRow
	for rows.Next() {
		var row models.SyncStatusRow
		if err := rows.Scan(
			&row.DealID, &row.ClientName, &row.Company, &row.DealValue, &row.DealPaymentStatus,
			&row.ProjectID, &row.ProjectName, &row.ProjectPaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("scan sync status row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *DealRepository) WonSummary() (*models.WonSummary, error) {
	query := `
        SELECT COUNT(*), COUNT(project_id),
               COALESCE(SUM(deal_value), 0), COALESCE(SUM(commission_amount), 0)
        FROM deals
        WHERE status = 'won'
    `
	s := &models.WonSummary{}
	err := r.db.QueryRow(query).Scan(&s.TotalDeals, &s.LinkedDeals, &s.TotalValue, &s.TotalCommission)
	if err != nil {
		return nil, fmt.Errorf("won summary: %w", err)
	}
	return s, nil
}

// CommissionForProject returns the commission percentage of a deal linked to
// the project, if one carries a non-zero percentage.
func (r *DealRepository) CommissionForProject(projectID int) (float64, bool, error) {
	const q = `
        SELECT commission_percentage
        FROM deals
        WHERE project_id = $1 AND commission_percentage > 0
        ORDER BY updated_at DESC
        LIMIT 1
    `
	var pct float64
	err := r.db.QueryRow(q, projectID).Scan(&pct)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("deal commission for project: %w", err)
	}
	return pct, true, nil
}

func (r *DealRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM deals GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count deals by status: %w", err)
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
