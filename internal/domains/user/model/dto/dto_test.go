package dto_test

import (
	"poolhire/internal/domains/user/model"
	"poolhire/internal/domains/user/model/dto"
	gDto "poolhire/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_ToFilterGroup(t *testing.T) {
	inactive := false

	tests := []struct {
		name   string
		filter dto.ListFilter
		want   string
		args   map[string]any
	}{
		{name: "empty", filter: dto.ListFilter{}, want: "", args: map[string]any{}},
		{
			name:   "level only",
			filter: dto.ListFilter{Level: "host"},
			want:   "(users.level = :level)",
			args:   map[string]any{model.FieldLevel: "host"},
		},
		{
			name:   "email and active",
			filter: dto.ListFilter{Email: "ann", Active: &inactive},
			want:   "(LOWER(users.email) LIKE LOWER(:email) AND users.active = :active)",
			args:   map[string]any{model.FieldEmail: "%ann%", model.FieldActive: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := tt.filter.ToFilterGroup()
			assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)

			clause, args := group.GetWhereClause()
			assert.Equal(t, tt.want, clause)
			assert.Equal(t, tt.args, args)
		})
	}
}
