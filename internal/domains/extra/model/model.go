package model

const (
	TableName  = "pool_extras"
	EntityName = "extra"

	FieldID       = "id"
	FieldPoolID   = "pool_id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldIsActive = "is_active"
)

// Extra is an add-on a guest can select when booking a pool. Price is in minor units.
type Extra struct {
	ID       string `db:"id"`
	PoolID   string `db:"pool_id"`
	Name     string `db:"name"`
	Price    int64  `db:"price"`
	IsActive bool   `db:"is_active"`
}
