package rbac

import "testing"

func TestCheckerHas(t *testing.T) {
	c := NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"student", "attempt:submit", true},
		{"student", "result:view-own", true},
		{"student", "result:view-all", false},
		{"counselor", "result:view-all", true},
		{"counselor", "attempt:create", false},
		{"admin", "anything:at-all", true},
		{"", "catalog:view", false},
		{"unknown", "catalog:view", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCheckerAnyAndWildcardPrefix(t *testing.T) {
	c := NewChecker(map[string][]string{
		"grader": {"result:*"},
	})
	if !c.Has("grader", "result:view-all") {
		t.Error("prefix wildcard should match")
	}
	if c.Has("grader", "attempt:view-all") {
		t.Error("prefix wildcard must not match other scopes")
	}
	if !c.Any("grader", "attempt:save", "result:view-own") {
		t.Error("Any should find the second permission")
	}
}
