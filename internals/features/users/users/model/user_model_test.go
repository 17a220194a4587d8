package model

import "testing"

func TestUserRoleScanNormalizesCase(t *testing.T) {
	cases := []struct {
		in   any
		want UserRole
	}{
		{"student", UserRoleStudent},
		{"TEACHER", UserRoleTeacher},
		{"  Parent ", UserRoleParent},
		{[]byte("Student"), UserRoleStudent},
		{nil, UserRole("")},
	}
	for _, tc := range cases {
		var r UserRole
		if err := r.Scan(tc.in); err != nil {
			t.Fatalf("Scan(%v): %v", tc.in, err)
		}
		if r != tc.want {
			t.Fatalf("Scan(%v) = %q, want %q", tc.in, r, tc.want)
		}
	}
}

func TestUserRoleScanRejectsUnknownType(t *testing.T) {
	var r UserRole
	if err := r.Scan(42); err == nil {
		t.Fatal("tipe non-string seharusnya error, bukan panic")
	}
}

func TestUserRoleValueLowercases(t *testing.T) {
	v, err := UserRole(" TEACHER ").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "teacher" {
		t.Fatalf("Value = %q, want %q", v, "teacher")
	}
}
