package utils

import "testing"

func TestIsOpenDuringSlot(t *testing.T) {
	tests := []struct {
		name     string
		hours    string
		timeSlot string
		want     bool
	}{
		{"open at slot start", "8am-3pm daily", "8:00 AM - 9:30 AM", true},
		{"closed before opening", "10am-4:30pm daily", "8:00 AM - 9:30 AM", false},
		{"closed at closing time", "7am-2pm daily", "2:00 PM - 4:00 PM", false},
		{"open with minutes", "10:30am-4:30pm daily", "10:30 AM - 12:00 PM", true},
		{"closed with minutes", "10:30am-4:30pm daily", "10:00 AM - 12:00 PM", false},
		{"evening range", "5pm-9pm Wed-Sun", "6:30 PM - 8:30 PM", true},
		{"evening range closed at lunch", "5pm-9pm Wed-Sun", "12:30 PM - 2:00 PM", false},
		{"range spanning noon", "11am-8pm Thu-Mon", "12:30 PM - 2:00 PM", true},
		{"day qualifier ignored", "8:30am-2pm Fri-Sun", "8:00 AM - 9:30 AM", false},
		{"empty hours fail open", "", "8:00 AM - 9:30 AM", true},
		{"unparseable hours fail open", "Sunrise to sunset daily", "10:00 AM - 12:00 PM", true},
		{"varies by shop fails open", "Varies by vendor", "3:00 PM - 5:00 PM", true},
		{"unparseable slot fails open", "9am-5pm daily", "whenever", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpenDuringSlot(tt.hours, tt.timeSlot); got != tt.want {
				t.Errorf("IsOpenDuringSlot(%q, %q) = %v, want %v", tt.hours, tt.timeSlot, got, tt.want)
			}
		})
	}
}
