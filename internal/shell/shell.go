// Package shell resolves which top-level view the application renders for
// a given session and path. Resolution is a pure table dispatch with no
// side effects: authorization is re-evaluated on every call, so a role
// change takes effect on the next resolve.
package shell

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
)

type User struct {
	Role Role
}

// Session is the authentication state the shell consumes. It is owned by
// the session provider; the shell only reads it.
type Session struct {
	IsAuthenticated bool
	IsLoading       bool
	User            *User
}

type View string

const (
	ViewLanding           View = "landing"
	ViewCitizenHome       View = "citizen_home"
	ViewComplaints        View = "complaints"
	ViewCommunity         View = "community"
	ViewDashboard         View = "dashboard"
	ViewRewards           View = "rewards"
	ViewOfficialDashboard View = "official_dashboard"
	ViewNotFound          View = "not_found"
)

// staticRoutes are the paths with a fixed view once authenticated.
// "/" and "/officials" need role dispatch and are handled in Resolve.
var staticRoutes = map[string]View{
	"/complaints": ViewComplaints,
	"/community":  ViewCommunity,
	"/dashboard":  ViewDashboard,
	"/rewards":    ViewRewards,
}

// Resolve picks exactly one view for the path.
//
// While the session is loading or unauthenticated only the landing view
// exists; unknown paths fall through to not-found only after load
// completes. The officials view is guarded softly: a non-official gets
// not-found, never a redirect or an error.
func Resolve(s Session, path string) View {
	if s.IsLoading || !s.IsAuthenticated {
		return ViewLanding
	}

	switch path {
	case "/":
		if s.role() == RoleOfficial {
			return ViewOfficialDashboard
		}
		return ViewCitizenHome
	case "/officials":
		if s.role() == RoleOfficial {
			return ViewOfficialDashboard
		}
		return ViewNotFound
	}

	if view, ok := staticRoutes[path]; ok {
		return view
	}
	return ViewNotFound
}

func (s Session) role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
