package gate

import "context"

// Profile is a named role with a set of granted permissions.
type Profile interface {
	Name() string
	HasPermission(requested Permission) bool
}

// ProfileResolver resolves a subject id to its profile.
// A nil profile with nil error means the subject has no role assigned.
type ProfileResolver interface {
	Resolve(ctx context.Context, subjectID uint) (Profile, error)
}

// StaticProfile is an in-memory profile used for tests and seeding.
type StaticProfile struct {
	name  string
	perms map[Permission]bool
}

func NewStaticProfile(name string, perms ...Permission) *StaticProfile {
	p := &StaticProfile{name: name, perms: make(map[Permission]bool)}
	for _, perm := range perms {
		p.perms[perm] = true
	}
	return p
}

func (p *StaticProfile) Name() string { return p.name }

// HasPermission checks the requested permission against each grant,
// honouring wildcard matching.
func (p *StaticProfile) HasPermission(requested Permission) bool {
	for perm := range p.perms {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}

// StaticResolver maps subject ids to fixed profiles.
type StaticResolver struct {
	profiles map[uint]Profile
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{profiles: make(map[uint]Profile)}
}

func (r *StaticResolver) Set(subjectID uint, profile Profile) {
	r.profiles[subjectID] = profile
}

func (r *StaticResolver) Resolve(_ context.Context, subjectID uint) (Profile, error) {
	if p, ok := r.profiles[subjectID]; ok {
		return p, nil
	}
	return nil, nil
}
