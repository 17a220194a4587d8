package model

import "testing"

func TestFeeStatusScan(t *testing.T) {
	cases := []struct {
		in   any
		want FeeStatus
	}{
		{"Paid", FeePaid},
		{"paid", FeePaid},
		{"PENDING", FeePending},
		{[]byte("Overdue"), FeeOverdue},
	}
	for _, tc := range cases {
		var s FeeStatus
		if err := s.Scan(tc.in); err != nil {
			t.Fatalf("Scan(%v): %v", tc.in, err)
		}
		if s != tc.want {
			t.Fatalf("Scan(%v) = %q, want %q", tc.in, s, tc.want)
		}
	}
}

func TestFeeStatusScanRejectsUnknown(t *testing.T) {
	var s FeeStatus
	if err := s.Scan("Cancelled"); err == nil {
		t.Fatal("status di luar enum seharusnya error")
	}
}

func TestFeeStatusValue(t *testing.T) {
	v, err := FeeOverdue.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "Overdue" {
		t.Fatalf("Value = %q, want %q", v, "Overdue")
	}
}
