package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"Regular date", 2017, time.January, 14, false},
		{"Leap day", 2016, time.February, 29, false},
		{"Leap day in non-leap year", 2017, time.February, 29, true},
		{"February 30", 2017, time.February, 30, true},
		{"Month 13", 2017, 13, 1, true},
		{"Day zero", 2017, time.March, 0, true},
		{"Year one", 1, time.January, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.year, tt.month, tt.day)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDate(%d, %d, %d) error = %v, wantErr %v",
					tt.year, tt.month, tt.day, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("NewDate() error = %v, want ErrInvalidDate", err)
				}
				return
			}
			if d.Year() != tt.year || d.Month() != tt.month || d.Day() != tt.day {
				t.Errorf("NewDate(%d, %d, %d) = %v", tt.year, tt.month, tt.day, d)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  int
	}{
		{"Monday", MustDate(2025, 1, 13), 0},
		{"Tuesday", MustDate(2025, 1, 14), 1},
		{"Wednesday", MustDate(2025, 1, 15), 2},
		{"Thursday", MustDate(2025, 1, 16), 3},
		{"Friday", MustDate(2025, 1, 17), 4},
		{"Saturday", MustDate(2000, 1, 1), 5},
		{"Sunday", MustDate(2017, 1, 1), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Weekday(); got != tt.want {
				t.Errorf("Weekday(%v) = %v, want %v", tt.input, got, tt.want)
			}
			wantWeekday := tt.want < 5
			if tt.input.IsWeekday() != wantWeekday {
				t.Errorf("IsWeekday(%v) = %v, want %v", tt.input, tt.input.IsWeekday(), wantWeekday)
			}
			if tt.input.IsWeekend() == wantWeekday {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.input, tt.input.IsWeekend(), !wantWeekday)
			}
		})
	}
}

func TestAddDaysAndDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		n     int
		want  Date
	}{
		{"Forward across year", MustDate(2016, 12, 31), 14, MustDate(2017, 1, 14)},
		{"Backward across year", MustDate(2000, 1, 1), -5, MustDate(1999, 12, 27)},
		{"Zero", MustDate(2017, 1, 3), 0, MustDate(2017, 1, 3)},
		{"Across leap day", MustDate(2016, 2, 28), 2, MustDate(2016, 3, 1)},
		{"Several centuries", MustDate(1600, 3, 1), 146097, MustDate(2000, 3, 1)},
		{"Millennia", MustDate(1, 1, 1), 3652058, MustDate(9999, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.AddDays(tt.n)
			if got != tt.want {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
			}
			if diff := tt.start.DaysUntil(tt.want); diff != tt.n {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.start, tt.want, diff, tt.n)
			}
			if diff := tt.want.DaysUntil(tt.start); diff != -tt.n {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.want, tt.start, diff, -tt.n)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := MustDate(2016, 12, 31)
	b := MustDate(2017, 1, 1)

	if !a.Before(b) || a.After(b) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) || b.Before(a) {
		t.Errorf("expected %v after %v", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) = %d, want 0", a, a, a.Compare(a))
	}
	if MustDate(2017, 2, 1).Compare(MustDate(2017, 1, 31)) != 1 {
		t.Errorf("expected month ordering to win over day ordering")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"ISO date", "2017-10-01", MustDate(2017, 10, 1), false},
		{"Unpadded", "2017-1-3", MustDate(2017, 1, 3), false},
		{"Dotted", "15.01.2025", MustDate(2025, 1, 15), false},
		{"Surrounding spaces", " 2000-01-01 ", MustDate(2000, 1, 1), false},
		{"Invalid day", "2017-02-30", Date{}, true},
		{"Garbage", "tomorrow", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d := MustDate(1, 1, 1)
	for i := 0; i < 400; i++ {
		got, err := ParseDate(d.String())
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", d.String(), err)
		}
		if got != d {
			t.Fatalf("ParseDate(%q) = %v, want %v", d.String(), got, d)
		}
		d = d.AddDays(9127)
	}
}

func TestResolveStart(t *testing.T) {
	for _, value := range []string{"", "today", "TODAY"} {
		got, err := ResolveStart(value)
		if err != nil {
			t.Fatalf("ResolveStart(%q) error = %v", value, err)
		}
		// Allow for the test running across midnight.
		if got != Today() && got != Today().AddDays(-1) {
			t.Errorf("ResolveStart(%q) = %v, want today", value, got)
		}
	}

	got, err := ResolveStart("2017-01-01")
	if err != nil || got != MustDate(2017, 1, 1) {
		t.Errorf("ResolveStart(2017-01-01) = %v, %v", got, err)
	}
}

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}
