package services

// Allowed status transitions. Deals never leave "won"/"lost" sideways; a
// project can be cancelled from any non-final stage.
var DealTransitions = map[string]map[string]bool{
	"new":       {"qualified": true, "lost": true},
	"qualified": {"proposal": true, "won": true, "lost": true},
	"proposal":  {"won": true, "lost": true},
	"won":       {},
	"lost":      {},
}

var ProjectTransitions = map[string]map[string]bool{
	"invoicing":          {"logistics_planning": true, "cancelled": true},
	"logistics_planning": {"pre_event": true, "cancelled": true},
	"pre_event":          {"event_week": true, "cancelled": true},
	"event_week":         {"follow_up": true, "cancelled": true},
	"follow_up":          {"completed": true, "cancelled": true},
	"completed":          {},
	"cancelled":          {},
}

func canTransition(current, to string, table map[string]map[string]bool) bool {
	if current == "" {
		// empty in the DB — allow any starting status
		return true
	}
	nexts, ok := table[current]
	if !ok {
		return false
	}
	return nexts[to]
}
