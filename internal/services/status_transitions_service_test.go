package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"new", "qualified", true},
		{"new", "won", false},
		{"qualified", "won", true},
		{"proposal", "lost", true},
		{"won", "lost", false},
		{"lost", "new", false},
		{"", "won", true}, // legacy rows with no status
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to, DealTransitions),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestProjectTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"invoicing", "logistics_planning", true},
		{"invoicing", "event_week", false},
		{"follow_up", "completed", true},
		{"pre_event", "cancelled", true},
		{"completed", "cancelled", false},
		{"cancelled", "invoicing", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to, ProjectTransitions),
			"%s -> %s", tt.from, tt.to)
	}
}
