package policy

import (
	"context"

	"github.com/quillarchive/quillarchive/internal/gate"
)

// OwnershipPolicy is the gate.Policy consulted after profile permissions:
// the subject must own the concrete resource. Works with any resource
// implementing Ownable.
type OwnershipPolicy struct{}

func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{}
}

// Can checks ownership. For list/create (nil resource) there is nothing to
// own, so profile permissions alone decide. Resources without the Ownable
// capability are denied rather than silently allowed.
func (p *OwnershipPolicy) Can(_ context.Context, subjectID uint, _ gate.Action, resource any) bool {
	if resource == nil {
		return true
	}
	o, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return o.GetUserID() == subjectID
}
