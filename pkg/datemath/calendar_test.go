package datemath_test

import (
	"testing"
	"time"

	"markdown-task-calendar/pkg/datemath"
)

func TestNew(t *testing.T) {
	if _, err := datemath.New("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}
	if _, err := datemath.New("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseInput(t *testing.T) {
	cal, _ := datemath.New("UTC")

	tests := []struct {
		name     string
		value    string
		want     time.Time
		wantTime bool
		wantErr  bool
	}{
		{name: "Date", value: "2025-11-29", want: time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Date time", value: "2025-11-29T14:30", want: time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC), wantTime: true},
		{name: "Seconds", value: "2025-11-29T14:30:15", want: time.Date(2025, 11, 29, 14, 30, 15, 0, time.UTC), wantTime: true},
		{name: "RFC3339", value: "2025-11-29T14:30:00Z", want: time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC), wantTime: true},
		{name: "Garbage", value: "next monday", wantErr: true},
		{name: "Invalid day", value: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasTime, err := cal.ParseInput(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) || hasTime != tt.wantTime {
				t.Errorf("ParseInput() = %v (time=%v), want %v (time=%v)", got, hasTime, tt.want, tt.wantTime)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)

	if got := datemath.EndOfDay(base); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestIsDefaultDropTime(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"Midnight", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"Noon", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), true},
		{"Noon thirty", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC), false},
		{"Morning", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.IsDefaultDropTime(tt.at); got != tt.want {
				t.Errorf("IsDefaultDropTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDropEnd(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		explicit bool
		want     time.Time
	}{
		{
			name: "Exclusive next-day midnight becomes inclusive",
			end:  time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Explicit time is bumped to end of day",
			end:      time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
			explicit: true,
			want:     time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "Noon sentinel",
			end:  time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Same-day midnight untouched",
			end:  start,
			want: start,
		},
		{
			name: "Real clock untouched",
			end:  time.Date(2024, 5, 4, 15, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 4, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "Zero end collapses to start",
			want: start,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.NormalizeDropEnd(start, tt.end, tt.explicit); !got.Equal(tt.want) {
				t.Errorf("NormalizeDropEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	if got := datemath.DaysBetween(a, b); got != 2 {
		t.Errorf("DaysBetween() = %d, want 2", got)
	}
	if (datemath.Range{Start: a, End: a.Add(time.Hour)}).MultiDay() != true {
		t.Errorf("expected range crossing midnight to be multi-day")
	}
}
