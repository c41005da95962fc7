package policy

import (
	"context"
	"net/http"

	"github.com/quillarchive/quillarchive/internal/auth"
	"github.com/quillarchive/quillarchive/internal/gate"
	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/middleware"
	"github.com/quillarchive/quillarchive/internal/models"
)

// Named permissions checked through the gate's profile resolver.
const (
	PermTagWrangler gate.Permission = "tag:wrangle"
	PermOpendoors   gate.Permission = "archivist:import"
)

// Settings exposes the archive-wide switches the guards consult.
type Settings interface {
	TagWranglingOff(ctx context.Context) bool
}

// Engine holds the long-lived pieces of the authorization layer and mints a
// Guard per request.
type Engine struct {
	Gate     *gate.Gate
	Settings Settings
}

// Guard is the per-request decision point. Every Check/Only method returns
// true to allow; false means the deny response has already been written, so
// handlers just return:
//
//	if !g.AdminOnly() {
//		return
//	}
type Guard struct {
	w  http.ResponseWriter
	r  *http.Request
	id auth.Identity
	e  *Engine
}

// Guard binds a request to the engine. The identity comes from the request
// context put there by the auth middleware; no process-wide slot exists.
func (e *Engine) Guard(w http.ResponseWriter, r *http.Request) *Guard {
	return &Guard{w: w, r: r, id: auth.IdentityFrom(r.Context()), e: e}
}

// Identity returns the requester the guard is deciding for.
func (g *Guard) Identity() auth.Identity { return g.id }

func userPath(u *models.User) string { return "/users/" + u.Login }

func (g *Guard) denyRedirect(target, kind, code string, params ...string) {
	if httpx.WantsJSON(g.r) {
		httpx.Denied(g.w)
		return
	}
	middleware.Flash(g.w, g.r, kind, code, params...)
	http.Redirect(g.w, g.r, target, http.StatusFound)
}

// AdminOnly allows only a logged-in admin. Denials record the attempted
// location and land on the default landing page with a notice.
func (g *Guard) AdminOnly() bool {
	if g.id.IsAdmin() {
		return true
	}
	middleware.StoreLocation(g.w, g.r)
	g.denyRedirect("/", "error", "admin_only")
	return false
}

// UsersOnly allows only a logged-in non-admin user.
func (g *Guard) UsersOnly() bool {
	if g.id.SignedIn() && !g.id.IsAdmin() {
		return true
	}
	return g.AccessDenied("")
}

// OpendoorsOnly allows only a non-admin user holding the Open Doors
// archivist permission.
func (g *Guard) OpendoorsOnly() bool {
	if g.id.SignedIn() && !g.id.IsAdmin() &&
		g.e.Gate.Permit(g.r.Context(), g.id.User.ID, PermOpendoors) {
		return true
	}
	return g.AccessDenied("")
}

// AccessDenied is the generic denial: it records the attempted location,
// then sends a signed-in user to their own page (or redirectOverride) with a
// "no permission" notice, and everyone else to the sign-in page with a
// "please log in" notice. Always returns false so guards can end with
// `return g.AccessDenied("")`.
func (g *Guard) AccessDenied(redirectOverride string) bool {
	middleware.StoreLocation(g.w, g.r)
	if g.id.SignedIn() {
		target := redirectOverride
		if target == "" {
			target = userPath(g.id.User)
		}
		g.denyRedirect(target, "error", "logged_in_no_permission")
		return false
	}
	target := redirectOverride
	if target == "" {
		target = "/login"
	}
	g.denyRedirect(target, "notice", "please_log_in")
	return false
}

// owns reports whether the current user owns the resource. The resource may
// be a user itself, matched by identity, otherwise ownership runs through
// the Ownable capability.
func (g *Guard) owns(resource any) bool {
	if g.id.User == nil {
		return false
	}
	if other, ok := resource.(*models.User); ok {
		return other.ID == g.id.User.ID
	}
	if o, ok := resource.(Ownable); ok {
		return o.GetUserID() == g.id.User.ID
	}
	return false
}

// CheckOwnership allows only the owner of the resource; denials land on the
// caller-supplied fallback path.
func (g *Guard) CheckOwnership(resource any, fallback string) bool {
	if g.owns(resource) {
		return true
	}
	g.denyRedirect(fallback, "error", "not_allowed_to_see")
	return false
}

// CheckOwnershipOrAdmin additionally lets admins through.
func (g *Guard) CheckOwnershipOrAdmin(resource any, fallback string) bool {
	if g.id.IsAdmin() {
		return true
	}
	return g.CheckOwnership(resource, fallback)
}

// CheckVisibility decides whether the requester may view the resource.
// Restricted content asks anonymous visitors to log in rather than hard
// denying; skins follow their own rule (admin, owner, or official); all
// other resources are viewable unless hidden and the viewer is neither
// admin nor owner.
func (g *Guard) CheckVisibility(resource any) bool {
	if res, ok := resource.(Restricted); ok && res.IsRestricted() && !g.id.LoggedInAtAll() {
		middleware.StoreLocation(g.w, g.r)
		g.denyRedirect("/login?restricted=true", "notice", "restricted_content")
		return false
	}

	if skin, ok := resource.(*models.Skin); ok {
		if g.id.IsAdmin() || g.owns(skin) || skin.Official {
			return true
		}
		return g.AccessDenied("")
	}

	isHidden := !visibleOrUnsupported(resource) || hiddenByAdmin(resource)
	canViewHidden := g.id.IsAdmin() || g.owns(resource)
	if isHidden && !canViewHidden {
		return g.AccessDenied("")
	}
	return true
}

// CheckVisibilityFor gates adding or editing content attached to parent.
// Admins and the parent's owner bypass every check; for everyone else a
// hidden, unrevealed, or invisible parent denies with a redirect to root.
func (g *Guard) CheckVisibilityFor(parent any) bool {
	if g.id.IsAdmin() || g.owns(parent) {
		return true
	}
	if hiddenByAdmin(parent) {
		g.denyRedirect("/", "error", "hidden_by_admin")
		return false
	}
	if c, ok := parent.(CollectionItem); ok && c.InUnrevealedCollection() {
		g.denyRedirect("/", "error", "not_allowed_to_see")
		return false
	}
	if !visibleOrUnsupported(parent) {
		g.denyRedirect("/", "error", "not_allowed_to_see")
		return false
	}
	return true
}

// CheckPermissionToWrangle gates tag wrangling: the global kill switch stops
// everyone but admins, then admins and tag wranglers may proceed.
func (g *Guard) CheckPermissionToWrangle() bool {
	if g.e.Settings.TagWranglingOff(g.r.Context()) && !g.id.IsAdmin() {
		g.denyRedirect("/", "error", "wrangling_disabled")
		return false
	}
	if g.id.IsAdmin() {
		return true
	}
	if g.id.SignedIn() && g.e.Gate.Permit(g.r.Context(), g.id.User.ID, PermTagWrangler) {
		return true
	}
	return g.AccessDenied("")
}

func (g *Guard) userTimeZone() string {
	if g.id.User != nil && g.id.User.Preference != nil {
		return g.id.User.Preference.TimeZone
	}
	return ""
}

// CheckUserStatus blocks suspended and banned users from adding or editing
// content, with the appropriate notice on their own page.
func (g *Guard) CheckUserStatus() bool {
	u := g.id.User
	if u == nil {
		return true
	}
	if u.Banned {
		g.denyRedirect(userPath(u), "error", "ban_notice")
		return false
	}
	if u.CurrentlySuspended() {
		g.denyRedirect(userPath(u), "error", "suspension_notice",
			"date", FormatUnban(*u.SuspendedUntil, g.userTimeZone()))
		return false
	}
	return true
}

// CheckUserNotSuspended fires only for the temporary-suspension case; it
// gates destructive actions (deletion) that even banned-state handling
// elsewhere doesn't cover.
func (g *Guard) CheckUserNotSuspended() bool {
	u := g.id.User
	if u == nil || !u.CurrentlySuspended() {
		return true
	}
	g.denyRedirect(userPath(u), "error", "suspension_notice",
		"date", FormatUnban(*u.SuspendedUntil, g.userTimeZone()))
	return false
}
