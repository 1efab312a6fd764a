package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"markdown-task-calendar/pkg/response"
)

func TestMarshalJSON_KeepsWallClock(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"Date UTC", response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)), `"2024-05-01"`},
		{"DateTime UTC", response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)), `"2024-05-01T15:30"`},
		// 23:30 in ICT is 16:30 UTC on the same day; the ICT wall clock is written.
		{"Date in zone", response.Date(time.Date(2024, 5, 1, 23, 30, 0, 0, ict)), `"2024-05-01"`},
		{"DateTime in zone", response.DateTime(time.Date(2024, 5, 1, 23, 30, 0, 0, ict)), `"2024-05-01T23:30"`},
		// 01:00 in ICT is still the previous day in UTC.
		{"Date across midnight", response.Date(time.Date(2024, 5, 2, 1, 0, 0, 0, ict)), `"2024-05-02"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", b, tt.want)
			}
		})
	}
}
