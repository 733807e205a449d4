package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StageCompletion maps task names to done-flags within the current stage.
// Stored as JSONB.
type StageCompletion map[string]bool

func (s StageCompletion) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StageCompletion) Scan(src interface{}) error {
	if src == nil {
		*s = StageCompletion{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("stage_completion: unsupported type %T", src)
	}
}

// Project is a confirmed engagement being fulfilled.
type Project struct {
	ID          int    `json:"id"`
	ProjectName string `json:"project_name"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Company     string `json:"company"`
	EventDate   string `json:"event_date"` // YYYY-MM-DD
	Status      string `json:"status"`

	Budget               float64 `json:"budget"`
	SpeakerFee           float64 `json:"speaker_fee"`
	ActualRevenue        float64 `json:"actual_revenue"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionAmount     float64 `json:"commission_amount"`
	PaymentStatus        string  `json:"payment_status"`
	PaymentDate          *string `json:"payment_date"`
	FinancialNotes       string  `json:"financial_notes,omitempty"`

	StageCompletion StageCompletion `json:"stage_completion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectFinanceUpdate struct {
	Budget               float64  `json:"budget"`
	SpeakerFee           float64  `json:"speaker_fee"`
	ActualRevenue        float64  `json:"actual_revenue"`
	CommissionPercentage float64  `json:"commission_percentage"`
	CommissionAmount     *float64 `json:"commission_amount"`
	PaymentStatus        string   `json:"payment_status"`
	PaymentDate          *string  `json:"payment_date"`
	FinancialNotes       string   `json:"financial_notes"`
}
