package dto

import (
	"poolhire/internal/domains/crm/model"
	"time"
)

type SyncResult struct {
	IntegrationID string `json:"integration_id"`
	PoolID        string `json:"pool_id,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// SyncResponse reports a completed run. Status is always success here; pool
// failures only show up in Results.
type SyncResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Results []SyncResult `json:"results"`
}

// SyncRunEvent is published once per run.
type SyncRunEvent struct {
	Integrations int       `json:"integrations"`
	Succeeded    int       `json:"succeeded"`
	Failed       int       `json:"failed"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Summarize counts pool-level outcomes of a run.
func (r SyncResponse) Summarize(integrations int, finishedAt time.Time) SyncRunEvent {
	event := SyncRunEvent{Integrations: integrations, FinishedAt: finishedAt}

	for _, result := range r.Results {
		if result.Status == model.SyncStatusSuccess {
			event.Succeeded++
		} else {
			event.Failed++
		}
	}

	return event
}
