package models

// SyncStatusRow is one line of the GET sync-finance report. Project fields are
// nil for unlinked deals.
type SyncStatusRow struct {
	DealID               int     `json:"deal_id"`
	ClientName           string  `json:"client_name"`
	Company              string  `json:"company"`
	DealValue            float64 `json:"deal_value"`
	DealPaymentStatus    string  `json:"deal_payment_status"`
	ProjectID            *int    `json:"project_id"`
	ProjectName          *string `json:"project_name"`
	ProjectPaymentStatus *string `json:"project_payment_status"`
	SyncStatus           string  `json:"sync_status"`
}

// WonSummary aggregates the won side of the pipeline.
type WonSummary struct {
	TotalDeals      int     `json:"total_deals"`
	LinkedDeals     int     `json:"linked_deals"`
	TotalValue      float64 `json:"total_value"`
	TotalCommission float64 `json:"total_commission"`
}

// BudgetMismatch is one deal/project pair whose figures diverge.
type BudgetMismatch struct {
	DealID        int     `json:"deal_id"`
	ProjectID     int     `json:"project_id"`
	EventTitle    string  `json:"event_title"`
	DealValue     float64 `json:"deal_value"`
	ProjectBudget float64 `json:"project_budget"`
	Difference    float64 `json:"difference"`
}

// SpeakerFeePreview is one row of the fee-migration dry run.
type SpeakerFeePreview struct {
	ProjectID        int     `json:"project_id"`
	ProjectName      string  `json:"project_name"`
	Budget           float64 `json:"budget"`
	Commission       float64 `json:"commission_percentage"`
	CommissionSource string  `json:"commission_source"` // project | deal | default
	OldSpeakerFee    float64 `json:"old_speaker_fee"`
	NewSpeakerFee    float64 `json:"new_speaker_fee"`
}
