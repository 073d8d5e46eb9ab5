package shared_test

import (
	"testing"

	"sorabora/shared"
	"sorabora/shared/dto"
)

func TestJoinGuestName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{
			name:     "both names trimmed and joined",
			first:    "  Jane ",
			last:     " Doe  ",
			expected: "Jane Doe",
		},
		{
			name:     "only first name",
			first:    "Jane",
			last:     "",
			expected: "Jane",
		},
		{
			name:     "only last name",
			first:    "",
			last:     "Doe",
			expected: "Doe",
		},
		{
			name:     "both empty",
			first:    "",
			last:     "",
			expected: "",
		},
		{
			name:     "whitespace only collapses to empty",
			first:    "   ",
			last:     "  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.JoinGuestName(tt.first, tt.last)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	got := shared.BuildCacheKey("gallery", "images")
	if got != "gallery:images" {
		t.Errorf("expected gallery:images, got %s", got)
	}
}

func TestFilterByField(t *testing.T) {
	group := shared.FilterByField("101", "room_number", "room_status")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if filter.Field != "room_number" || filter.Table != "room_status" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	where, args := group.GetWhereClause()
	if where != "(room_status.room_number = :room_number)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["room_number"] != "101" {
		t.Errorf("unexpected args: %+v", args)
	}
}
