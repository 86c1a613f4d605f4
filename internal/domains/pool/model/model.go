package model

import "poolhire/shared/model"

const (
	TableName  = "pools"
	EntityName = "pool"

	FieldID          = "id"
	FieldHostID      = "host_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldIsActive    = "is_active"
)

// Pool is a bookable listing. Price is the base per-booking price in minor units.
type Pool struct {
	ID          string `db:"id"`
	HostID      string `db:"host_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Price       int64  `db:"price"`
	Capacity    int    `db:"capacity"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
