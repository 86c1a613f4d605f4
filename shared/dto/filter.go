package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one predicate rendered with a sqlx named argument. ArgName defaults to
// Field and must be unique within a FilterGroup.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq like in less_eq greater_eq is_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate and its arguments. Unknown operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	column, arg := f.column(), f.arg()

	if op, ok := comparisons[f.Operator]; ok {
		return fmt.Sprintf("%s %s :%s", column, op, arg), map[string]any{arg: f.Value}
	}

	switch f.Operator {
	case FilterOperatorLike:
		// case-insensitive substring match
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), map[string]any{arg: fmt.Sprintf("%%%v%%", f.Value)}
	case FilterOperatorIn:
		return f.inClause(column, arg)
	case FilterIsNull:
		return column + " IS NULL", map[string]any{}
	default:
		return "", map[string]any{}
	}
}

// inClause expands a slice value into one named argument per element.
func (f *Filter) inClause(column, arg string) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return fmt.Sprintf("%s = :%s", column, arg), map[string]any{arg: f.Value}
	}

	if val.Len() == 0 {
		// an empty set matches nothing
		return "FALSE", map[string]any{}
	}

	args := make(map[string]any, val.Len())
	names := make([]string, val.Len())

	for idx := range val.Len() {
		name := fmt.Sprintf("%s_%d", arg, idx)
		args[name] = val.Index(idx).Interface()
		names[idx] = ":" + name
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(names, ", ")), args
}

// FilterGroup joins Filters (each a Filter or a nested FilterGroup) with Operator, AND when empty.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var where string

		var itemArgs map[string]any

		switch typed := item.(type) {
		case Filter:
			where, itemArgs = typed.GetWhereClause()
		case FilterGroup:
			where, itemArgs = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, itemArgs)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
