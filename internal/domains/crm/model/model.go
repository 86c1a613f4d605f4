package model

import "time"

const (
	TableName  = "crm_integrations"
	EntityName = "crm_integration"

	FieldID         = "id"
	FieldHostID     = "host_id"
	FieldProvider   = "provider"
	FieldIsActive   = "is_active"
	FieldLastSyncAt = "last_sync_at"
)

// Integration links a host account to an external CRM that mirrors pool availability.
type Integration struct {
	ID         string     `db:"id"`
	HostID     string     `db:"host_id"`
	Provider   string     `db:"provider"`
	APIKey     string     `db:"api_key"`
	APISecret  string     `db:"api_secret"`
	IsActive   bool       `db:"is_active"`
	LastSyncAt *time.Time `db:"last_sync_at"`
}

const (
	SyncLogTableName  = "availability_sync_logs"
	SyncLogEntityName = "availability_sync_log"

	SyncLogFieldID = "id"

	SyncStatusSuccess    = "success"
	SyncStatusError      = "error"
	SyncStatusInProgress = "in_progress"
)

// SyncLog is appended once per pool per run.
type SyncLog struct {
	ID            string    `db:"id"`
	IntegrationID string    `db:"integration_id"`
	PoolID        string    `db:"pool_id"`
	Status        string    `db:"status"`
	ErrorMessage  *string   `db:"error_message"`
	SyncedAt      time.Time `db:"synced_at"`
}
