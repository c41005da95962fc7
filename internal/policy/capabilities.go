// Package policy is the authorization layer of the archive: per-request
// guards that decide whether the current identity may act, writing the
// deny redirect themselves and returning false so handlers can short-circuit.
package policy

// Resource capabilities. A resource kind implements only the interfaces that
// apply to it; the guards probe by interface assertion, never by reflection.

// Ownable is a resource with an owning user.
type Ownable interface {
	GetUserID() uint
}

// Restricted is a resource that can be limited to logged-in visitors.
type Restricted interface {
	IsRestricted() bool
}

// Visibility is a resource with a general viewable/not-viewable state
// (drafts, unposted works).
type Visibility interface {
	Visible() bool
}

// AdminHideable is a resource an admin can hide from everyone but staff and
// the owner.
type AdminHideable interface {
	IsHiddenByAdmin() bool
}

// CollectionItem is a resource that can sit in an unrevealed collection.
type CollectionItem interface {
	InUnrevealedCollection() bool
}

// visibleOrUnsupported returns the Visible() result, or true for resources
// without the capability.
func visibleOrUnsupported(resource any) bool {
	if v, ok := resource.(Visibility); ok {
		return v.Visible()
	}
	return true
}

// hiddenByAdmin probes the AdminHideable capability.
func hiddenByAdmin(resource any) bool {
	if h, ok := resource.(AdminHideable); ok {
		return h.IsHiddenByAdmin()
	}
	return false
}
