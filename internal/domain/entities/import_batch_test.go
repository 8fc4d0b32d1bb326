package entities

import "testing"

func TestResolveOutcome(t *testing.T) {
	cases := []struct {
		name   string
		total  int
		ok     int
		failed int
		want   ImportOutcome
	}{
		{"all rows succeeded", 10, 10, 0, ImportOutcomeSucesso},
		{"all rows failed", 10, 0, 10, ImportOutcomeErro},
		{"mixed", 10, 7, 3, ImportOutcomeParcial},
		{"single ok", 1, 1, 0, ImportOutcomeSucesso},
		{"single failed", 1, 0, 1, ImportOutcomeErro},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveOutcome(tc.total, tc.ok, tc.failed); got != tc.want {
				t.Fatalf("ResolveOutcome(%d, %d, %d) = %s, want %s", tc.total, tc.ok, tc.failed, got, tc.want)
			}
		})
	}
}
