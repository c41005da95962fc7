package gate

import "strings"

// Permission names an allowed action on a resource type, written
// "resource:action" ("tag:wrangle", "archivist:import"). A "*" widens the
// grant to every action on the resource, or to everything.
type Permission string

// NewPermission builds the permission naming action on resourceType.
func NewPermission(resourceType string, action Action) Permission {
	return Permission(resourceType + ":" + string(action))
}

// PermissionSuperAdmin covers every action on every resource.
const PermissionSuperAdmin Permission = "*:*"

// Matches reports whether this granted permission covers the requested one.
// Exact grants, "*:*", and per-resource "resource:*" grants all cover.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin || p == requested {
		return true
	}
	res, act, ok := strings.Cut(string(p), ":")
	if !ok || act != "*" {
		return false
	}
	reqRes, _, _ := strings.Cut(string(requested), ":")
	return res == reqRes
}
