package dto

import (
	extraModel "poolhire/internal/domains/extra/model"
	"poolhire/internal/domains/pool/model"
	"poolhire/shared"
	gDto "poolhire/shared/dto"
	gModel "poolhire/shared/model"
	"poolhire/shared/timezone"

	"github.com/google/uuid"
)

type CreatePoolRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Location    string `json:"location"    validate:"required,max=100"`
	Price       int64  `json:"price"       validate:"min=0"`
	Capacity    int    `json:"capacity"    validate:"omitempty,min=0"`
	IsActive    *bool  `json:"is_active"   validate:"omitempty"`
}

func (c *CreatePoolRequest) ToModel(hostID string) model.Pool {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Pool{
		ID:          uuid.NewString(),
		HostID:      hostID,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Price:       c.Price,
		Capacity:    c.Capacity,
		IsActive:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  hostID,
			ModifiedBy: hostID,
		},
	}
}

type UpdatePoolRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Price       *int64 `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Capacity    *int   `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	IsActive    *bool  `db:"is_active"   json:"is_active"   validate:"omitempty"`
}

type PoolResponse struct {
	ID          string `json:"id"`
	HostID      string `json:"host_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Price       int64  `json:"price"`
	Capacity    int    `json:"capacity"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *PoolResponse) FromModel(model model.Pool) {
	r.ID = model.ID
	r.HostID = model.HostID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetPoolsResponse struct {
	Pools     []PoolResponse `json:"pools"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPoolsResponse) FromModels(models []model.Pool, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Pools = make([]PoolResponse, len(models))
	for i, mod := range models {
		r.Pools[i].FromModel(mod)
	}
}

type ExtraResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (r *ExtraResponse) FromModel(model extraModel.Extra) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
}

type GetExtrasResponse struct {
	Extras []ExtraResponse `json:"extras"`
}

func (r *GetExtrasResponse) FromModels(models []extraModel.Extra) {
	r.Extras = make([]ExtraResponse, len(models))
	for i, mod := range models {
		r.Extras[i].FromModel(mod)
	}
}

// ListFilter carries the listing query string.
type ListFilter struct {
	Search   string
	Location string
	MinPrice *int64
	MaxPrice *int64
	HostID   string
}

// ToFilterGroup only lists active pools; empty fields are left out.
func (f ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_name",
					Field:    model.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_description",
					Field:    model.FieldDescription,
					Operator: gDto.FilterOperatorLike,
					Value:    f.Search,
					Table:    model.TableName,
				},
			},
		})
	}

	if f.Location != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    f.Location,
			Table:    model.TableName,
		})
	}

	if f.MinPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *f.MinPrice,
			Table:    model.TableName,
		})
	}

	if f.MaxPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *f.MaxPrice,
			Table:    model.TableName,
		})
	}

	if f.HostID != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHostID,
			Operator: gDto.FilterOperatorEq,
			Value:    f.HostID,
			Table:    model.TableName,
		})
	}

	return group
}
