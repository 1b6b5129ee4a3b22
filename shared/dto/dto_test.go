package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/elizhang33/room-reservations-api/shared/constant"
	"github.com/elizhang33/room-reservations-api/shared/dto"
	"github.com/elizhang33/room-reservations-api/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}

	if metadata.CreatedAt == "" || metadata.ModifiedAt == "" {
		t.Error("expected formatted timestamps, got empty strings")
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "start_time",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "start_time",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with invalid page and limit",
			queryParams: map[string]string{
				"page":  "invalid",
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArg    any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "building",
				Value:    "Science Center",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			wantClause: "reservations.building = :building",
			wantArg:    "Science Center",
		},
		{
			name: "strict less for half-open window end",
			filter: dto.Filter{
				ArgName:  "window_end",
				Field:    "start_time",
				Value:    "2026-03-01T11:00:00Z",
				Operator: dto.FilterOperatorLess,
				Table:    "reservations",
			},
			wantClause: "reservations.start_time < :window_end",
			wantArg:    "2026-03-01T11:00:00Z",
		},
		{
			name: "strict greater for half-open window start",
			filter: dto.Filter{
				ArgName:  "window_start",
				Field:    "end_time",
				Value:    "2026-03-01T10:00:00Z",
				Operator: dto.FilterOperatorGreater,
				Table:    "reservations",
			},
			wantClause: "reservations.end_time > :window_start",
			wantArg:    "2026-03-01T10:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if strings.TrimSpace(clause) != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			argName := tt.filter.ArgName
			if argName == "" {
				argName = tt.filter.Field
			}

			if args[argName] != tt.wantArg {
				t.Errorf("expected arg %v, got %v", tt.wantArg, args[argName])
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "building", Value: "Annex", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "CONFIRMED", Operator: dto.FilterOperatorEq},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, "AND") {
		t.Errorf("expected AND-joined clause, got %q", clause)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}

	empty := dto.FilterGroup{}
	if clause, _ := empty.GetWhereClause(); clause != "" {
		t.Errorf("expected empty clause for empty group, got %q", clause)
	}
}
