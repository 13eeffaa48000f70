package shared

import "testing"

func TestFormatClock(t *testing.T) {
	tc := []struct {
		name    string
		seconds int
		want    string
	}{
		{name: "zero", seconds: 0, want: "00:00"},
		{name: "under a minute", seconds: 42, want: "00:42"},
		{name: "exact minute", seconds: 60, want: "01:00"},
		{name: "pomodoro default", seconds: 25 * 60, want: "25:00"},
		{name: "over an hour keeps minutes", seconds: 61*60 + 5, want: "61:05"},
		{name: "negative clamps to zero", seconds: -10, want: "00:00"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClock(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("GenerateID should not return empty strings")
	}
	if a == b {
		t.Error("consecutive ids should differ")
	}
}
