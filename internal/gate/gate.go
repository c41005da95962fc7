// Package gate is the central permission checkpoint for the archive.
// A Gate resolves a subject (user or admin id) to a Profile of granted
// permissions and optionally consults a per-resource Policy for ownership
// style checks. It knows nothing about HTTP; the policy guards sit on top.
package gate

import (
	"context"
	"errors"
)

// Action describes the kind of operation a subject wants to perform.
type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionList    Action = "list"
	ActionWrangle Action = "wrangle"
	ActionImport  Action = "import"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoPolicyDefined = errors.New("no policy defined for resource")
)

// Policy defines per-resource authorization rules consulted after the
// profile permission check. Resource may be nil for list/create checks.
type Policy interface {
	Can(ctx context.Context, subjectID uint, action Action, resource any) bool
}

// Gate combines profile permissions with resource policies.
// Authorization flow: subject must be non-zero, the subject's profile must
// grant "resource:action", and the resource policy (if registered and a
// resource is given) must agree.
type Gate struct {
	resolver ProfileResolver
	policies map[string]Policy
}

func New(resolver ProfileResolver) *Gate {
	return &Gate{
		resolver: resolver,
		policies: make(map[string]Policy),
	}
}

// Register adds a resource-specific policy. Overwrites any existing policy
// for that resource type.
func (g *Gate) Register(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

func (g *Gate) Authorize(ctx context.Context, subjectID uint, action Action, resourceType string, resource any) error {
	if subjectID == 0 {
		return ErrUnauthorized
	}

	profile, err := g.resolver.Resolve(ctx, subjectID)
	if err != nil || profile == nil {
		return ErrUnauthorized
	}
	if !profile.HasPermission(NewPermission(resourceType, action)) {
		return ErrUnauthorized
	}

	if resource != nil {
		if p, ok := g.policies[resourceType]; ok {
			if !p.Can(ctx, subjectID, action, resource) {
				return ErrUnauthorized
			}
		}
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, subjectID uint, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, subjectID, action, resourceType, resource) == nil
}

// Permit checks a bare named permission ("tag:wrangle", "archivist:import")
// against the subject's profile, with no resource policy involved.
func (g *Gate) Permit(ctx context.Context, subjectID uint, perm Permission) bool {
	if subjectID == 0 {
		return false
	}
	profile, err := g.resolver.Resolve(ctx, subjectID)
	if err != nil || profile == nil {
		return false
	}
	return profile.HasPermission(perm)
}
