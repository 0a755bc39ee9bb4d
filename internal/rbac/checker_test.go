package rbac

import "testing"

func TestCheckerHas(t *testing.T) {
	c := NewChecker(nil)
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"learner", "session:submit", true},
		{"learner", "quiz:create", false},
		{"author", "quiz:create", true},
		{"author", "session:view-all", true},
		{"admin", "anything:at-all", true},
		{"", "quiz:view", false},
		{"unknown", "quiz:view", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.role, tc.perm, got, tc.want)
		}
	}
}

func TestCheckerAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("learner", "session:view-own", "session:view-all") {
		t.Error("learner should match view-own")
	}
	if c.Any("learner", "quiz:create", "users:bulk_upsert") {
		t.Error("learner should not match author perms")
	}
}

func TestWildcardPrefix(t *testing.T) {
	c := NewChecker(map[string][]string{"ops": {"quiz:*"}})
	if !c.Has("ops", "quiz:view") || c.Has("ops", "session:submit") {
		t.Error("prefix wildcard misbehaved")
	}
}
