package shared_test

import (
	"strings"
	"testing"
	"time"

	"github.com/elizhang33/room-reservations-api/shared"
	"github.com/elizhang33/room-reservations-api/shared/constant"
	"github.com/elizhang33/room-reservations-api/shared/dto"
)

func boolPtr(b bool) *bool { return &b }

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounds up", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patchRequest struct {
		Equipment string     `db:"equipment"`
		GroupSize *int       `db:"group_size"`
		Skipped   string     `json:"skipped"`
		StartTime *time.Time `db:"start_time"`
	}

	size := 8
	fields := shared.TransformFields(patchRequest{Equipment: "projector", GroupSize: &size}, "user-1")

	if fields["equipment"] != "projector" {
		t.Errorf("expected equipment to be set, got %v", fields["equipment"])
	}

	if fields["group_size"] != size {
		t.Errorf("expected group_size %d, got %v", size, fields["group_size"])
	}

	if _, ok := fields["start_time"]; ok {
		t.Error("zero pointer field must not be included")
	}

	if _, ok := fields["skipped"]; ok {
		t.Error("fields without db tags must not be included")
	}

	if fields[constant.FieldModifiedBy] != "user-1" {
		t.Errorf("expected modified_by to be user-1, got %v", fields[constant.FieldModifiedBy])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("reservation:get", "abc"); got != "reservation:get:abc" {
		t.Errorf("unexpected cache key %q", got)
	}

	if got := shared.BuildCacheKey("reservation:gets"); got != "reservation:gets" {
		t.Errorf("unexpected cache key %q", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "start_time", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "building", Value: "Annex", Operator: dto.FilterOperatorEq},
		},
	}

	key := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	if !strings.HasPrefix(key, "reservation:gets:2:10:start_time:ASC") {
		t.Errorf("unexpected cache key prefix %q", key)
	}

	other := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{})
	if key == other {
		t.Error("different filters must produce different cache keys")
	}
}
