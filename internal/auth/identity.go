// Package auth resolves the identity making a request: an anonymous visitor,
// a logged-in user, or a logged-in admin. Identity travels in the request
// context only; there is no process-wide current-user slot.
package auth

import (
	"context"

	"github.com/quillarchive/quillarchive/internal/models"
)

// Identity is the resolved requester. At most one user and one admin can be
// present; both nil means anonymous.
type Identity struct {
	User  *models.User
	Admin *models.Admin
}

// SignedIn reports a logged-in (non-admin) user.
func (id Identity) SignedIn() bool { return id.User != nil }

// IsAdmin reports a logged-in admin.
func (id Identity) IsAdmin() bool { return id.Admin != nil }

// LoggedInAtAll reports any authenticated identity.
func (id Identity) LoggedInAtAll() bool { return id.User != nil || id.Admin != nil }

type ctxKey string

const identityCtxKey = ctxKey("identity")

// WithIdentity stores the resolved identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFrom extracts the identity; the zero Identity is anonymous.
func IdentityFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityCtxKey).(Identity); ok {
		return id
	}
	return Identity{}
}

// CurrentUser returns the logged-in user, or nil.
func CurrentUser(ctx context.Context) *models.User { return IdentityFrom(ctx).User }

// CurrentAdmin returns the logged-in admin, or nil.
func CurrentAdmin(ctx context.Context) *models.Admin { return IdentityFrom(ctx).Admin }
