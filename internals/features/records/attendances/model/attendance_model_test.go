package model

import "testing"

func TestAttendanceStatusScan(t *testing.T) {
	cases := []struct {
		in   any
		want AttendanceStatus
	}{
		{"Present", AttendancePresent},
		{"present", AttendancePresent},
		{"ABSENT", AttendanceAbsent},
		{[]byte("Absent"), AttendanceAbsent},
	}
	for _, tc := range cases {
		var s AttendanceStatus
		if err := s.Scan(tc.in); err != nil {
			t.Fatalf("Scan(%v): %v", tc.in, err)
		}
		if s != tc.want {
			t.Fatalf("Scan(%v) = %q, want %q", tc.in, s, tc.want)
		}
	}
}

func TestAttendanceStatusScanRejectsUnknown(t *testing.T) {
	var s AttendanceStatus
	if err := s.Scan("Late"); err == nil {
		t.Fatal("status di luar enum seharusnya error")
	}
	if err := s.Scan(42); err == nil {
		t.Fatal("tipe non-string seharusnya error")
	}
}

func TestAttendanceStatusValue(t *testing.T) {
	v, err := AttendancePresent.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "Present" {
		t.Fatalf("Value = %q, want %q", v, "Present")
	}
}
