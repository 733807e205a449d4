package models

import "time"

// Deal is a sales-pipeline record for a prospective or won engagement.
// Deals are never hard-deleted; closing one moves its status to "lost".
type Deal struct {
	ID          int    `json:"id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Company     string `json:"company"`
	EventTitle  string `json:"event_title"`
	EventDate   string `json:"event_date"` // YYYY-MM-DD
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`

	DealValue            float64 `json:"deal_value"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionAmount     float64 `json:"commission_amount"`
	PaymentStatus        string  `json:"payment_status"`
	PaymentDate          *string `json:"payment_date"`

	InvoiceNumber string `json:"invoice_number,omitempty"`
	ContractLink  string `json:"contract_link,omitempty"`
	InvoiceLink1  string `json:"invoice_link_1,omitempty"`
	InvoiceLink2  string `json:"invoice_link_2,omitempty"`
	Notes         string `json:"notes,omitempty"`

	ProjectID *int `json:"project_id"`
	OwnerID   int  `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DealFinanceUpdate carries the financial fields of the admin finances form.
// CommissionAmount may be omitted; it is then derived from the percentage.
type DealFinanceUpdate struct {
	DealValue            float64  `json:"deal_value"`
	CommissionPercentage float64  `json:"commission_percentage"`
	CommissionAmount     *float64 `json:"commission_amount"`
	PaymentStatus        string   `json:"payment_status"`
	PaymentDate          *string  `json:"payment_date"`
	InvoiceNumber        string   `json:"invoice_number"`
	ContractLink         string   `json:"contract_link"`
	InvoiceLink1         string   `json:"invoice_link_1"`
	InvoiceLink2         string   `json:"invoice_link_2"`
	Notes                string   `json:"notes"`
}
