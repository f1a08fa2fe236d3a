package v1

import "time"

// ClauseRequestKind selects how filters are organized into the where clause.
type ClauseRequestKind string

const (
	ClauseRequestKindData          ClauseRequestKind = "data"
	ClauseRequestKindGlobalFilters ClauseRequestKind = "globalFilters"
)

// ClauseRequestOperator joins the sections of the where clause.
type ClauseRequestOperator string

const (
	ClauseRequestOperatorAnd ClauseRequestOperator = "and"
	ClauseRequestOperatorOr  ClauseRequestOperator = "or"
)

type ColumnDefinition struct {
	FieldName string `json:"fieldName" validate:"required"`
	Visible   bool   `json:"visible"`
}

type FilterItem struct {
	Column       string              `json:"column" validate:"required"`
	Values       []string            `json:"values,omitempty"`
	LastSelected *bool               `json:"lastSelected,omitempty"`
	Primary      *bool               `json:"primary,omitempty"`
	Groupable    *bool               `json:"groupable,omitempty"`
	Columns      *[]ColumnDefinition `json:"columns,omitempty" validate:"omitempty,dive"`
}

type ClauseRequest struct {
	Kind         *ClauseRequestKind     `json:"kind,omitempty" validate:"omitempty,oneof=data globalFilters"`
	Operator     *ClauseRequestOperator `json:"operator,omitempty" validate:"omitempty,oneof=and or"`
	Filters      []FilterItem           `json:"filters,omitempty" validate:"dive"`
	Expression   *string                `json:"expression,omitempty" validate:"omitempty,max=4096"`
	SavedFilters []string               `json:"savedFilters,omitempty" validate:"dive,uuid"`
	GroupBy      *bool                  `json:"groupBy,omitempty"`
	OnlyPrimary  *bool                  `json:"onlyPrimary,omitempty"`
	Page         *int                   `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize     *int                   `json:"pageSize,omitempty" validate:"omitempty,min=1,max=100"`
}

type ClausePreview struct {
	Where   string   `json:"where"`
	GroupBy []string `json:"groupBy,omitempty"`
	Valid   bool     `json:"valid"`
	Issues  *string  `json:"issues,omitempty"`
}

type Record struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Owner     string    `json:"owner"`
	Region    string    `json:"region"`
	Country   string    `json:"country"`
	SizeMb    float64   `json:"sizeMb"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecordInput struct {
	Id       *string `json:"id,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category,omitempty"`
	Status   string  `json:"status,omitempty"`
	Owner    string  `json:"owner,omitempty"`
	Region   string  `json:"region,omitempty"`
	Country  string  `json:"country,omitempty"`
	SizeMb   float64 `json:"sizeMb,omitempty" validate:"gte=0"`
	Archived bool    `json:"archived,omitempty"`
}

type RecordImport struct {
	Records []RecordInput `json:"records" validate:"required,min=1,dive"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type RecordListResponse struct {
	Records   []Record `json:"records"`
	Total     int      `json:"total"`
	Page      int      `json:"page"`
	PageCount int      `json:"pageCount"`
}

type RecordGroup struct {
	Keys        map[string]string `json:"keys"`
	Count       int               `json:"count"`
	TotalSizeMb float64           `json:"totalSizeMb"`
}

type RecordGroupsResponse struct {
	Columns []string      `json:"columns"`
	Groups  []RecordGroup `json:"groups"`
}

type SavedFilterCreate struct {
	Name       string `json:"name" validate:"required,max=128"`
	Expression string `json:"expression" validate:"required,max=4096"`
}

type SavedFilter struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Expression string    `json:"expression"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SavedFilterList struct {
	Filters []SavedFilter `json:"filters"`
}
