package gate_test

import (
	"context"
	"testing"

	"github.com/quillarchive/quillarchive/internal/gate"
)

// allowAllPolicy approves or rejects everything, for wiring tests.
type fixedPolicy struct {
	allow bool
}

func (p *fixedPolicy) Can(_ context.Context, _ uint, _ gate.Action, _ any) bool {
	return p.allow
}

func newGateWith(perms ...gate.Permission) *gate.Gate {
	resolver := gate.NewStaticResolver()
	resolver.Set(1, gate.NewStaticProfile("tester", perms...))
	return gate.New(resolver)
}

func TestAuthorize_ZeroSubject(t *testing.T) {
	g := newGateWith(gate.PermissionSuperAdmin)
	if err := g.Authorize(context.Background(), 0, gate.ActionView, "question", nil); err != gate.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for zero subject, got %v", err)
	}
}

func TestAuthorize_NoProfile(t *testing.T) {
	g := gate.New(gate.NewStaticResolver())
	if err := g.Authorize(context.Background(), 99, gate.ActionView, "question", nil); err != gate.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for subject without profile, got %v", err)
	}
}

func TestAuthorize_ProfilePermission(t *testing.T) {
	g := newGateWith(gate.NewPermission("question", gate.ActionView))

	if err := g.Authorize(context.Background(), 1, gate.ActionView, "question", nil); err != nil {
		t.Errorf("expected allow, got %v", err)
	}
	if err := g.Authorize(context.Background(), 1, gate.ActionDelete, "question", nil); err != gate.ErrUnauthorized {
		t.Errorf("expected deny for ungranted action, got %v", err)
	}
}

func TestAuthorize_PolicyConsultedWithResource(t *testing.T) {
	g := newGateWith(gate.NewPermission("question", "*"))
	g.Register("question", &fixedPolicy{allow: false})

	// Without a resource the policy is skipped.
	if !g.Can(context.Background(), 1, gate.ActionList, "question", nil) {
		t.Error("expected list without resource to pass on profile alone")
	}
	// With a resource the denying policy wins.
	if g.Can(context.Background(), 1, gate.ActionUpdate, "question", struct{}{}) {
		t.Error("expected policy denial with resource")
	}
}

func TestPermit(t *testing.T) {
	g := newGateWith(gate.Permission("tag:wrangle"))

	if !g.Permit(context.Background(), 1, "tag:wrangle") {
		t.Error("expected granted named permission")
	}
	if g.Permit(context.Background(), 1, "archivist:import") {
		t.Error("expected ungranted permission to be denied")
	}
	if g.Permit(context.Background(), 0, "tag:wrangle") {
		t.Error("expected zero subject to be denied")
	}
}

func TestPermissionWildcards(t *testing.T) {
	cases := []struct {
		granted   gate.Permission
		requested gate.Permission
		want      bool
	}{
		{"*:*", "question:delete", true},
		{"question:*", "question:create", true},
		{"question:*", "tag:create", false},
		{"question:view", "question:view", true},
		{"question:view", "question:update", false},
		{"malformed", "question:view", false},
	}
	for _, c := range cases {
		if got := c.granted.Matches(c.requested); got != c.want {
			t.Errorf("%s matches %s = %v, want %v", c.granted, c.requested, got, c.want)
		}
	}
}
