package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name            string
		value, min, max int
		want            int
	}{
		{"inside", 3, 0, 5, 3},
		{"below", -2, 0, 5, 0},
		{"above", 9, 0, 5, 5},
		{"empty range", 4, 0, -1, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
				t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.min, tc.max, got, tc.want)
			}
		})
	}
}
