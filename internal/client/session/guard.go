package session

import "context"

// Route describes one navigable view and its access requirements.
type Route struct {
	Path string

	// RequiresAuth gates the view behind any authenticated session.
	RequiresAuth bool

	// RequiredRole, when set, additionally requires this exact role.
	RequiredRole Role

	// AnonymousOnly marks login/registration views: authenticated users are
	// redirected to the content path instead of rendering.
	AnonymousOnly bool
}

// Decision is the outcome of guarding a view: render it, or redirect the
// user elsewhere.
type Decision struct {
	Render     bool
	RedirectTo string
}

func render() Decision { return Decision{Render: true} }

func redirect(path string) Decision { return Decision{RedirectTo: path} }

// GuardConfig names the navigation targets guard decisions redirect to.
type GuardConfig struct {
	// LoginPath receives anonymous users who requested a protected view.
	LoginPath string

	// HomePath receives authenticated users whose role does not match a
	// view's required role. Redirecting (rather than silently rendering)
	// signals the authorization failure.
	HomePath string

	// ContentPath receives authenticated users who requested an
	// anonymous-only view such as login or registration.
	ContentPath string

	// DefaultRedirect resolves unknown paths; configurable to either the
	// login or the home path.
	DefaultRedirect string
}

// Guard decides, per view, whether to render or redirect based on the
// current session.
type Guard struct {
	state  *State
	cfg    GuardConfig
	routes map[string]Route
}

func NewGuard(state *State, cfg GuardConfig, routes []Route) *Guard {
	byPath := make(map[string]Route, len(routes))
	for _, r := range routes {
		byPath[r.Path] = r
	}
	return &Guard{state: state, cfg: cfg, routes: byPath}
}

// Check guards a single route against the current session.
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	if route.AnonymousOnly {
		return g.RedirectIfAuthenticated(ctx, route)
	}

	sess := g.state.Current()

	if (route.RequiresAuth || route.RequiredRole != RoleNone) && !sess.Authenticated {
		return redirect(g.cfg.LoginPath)
	}

	if route.RequiredRole != RoleNone && sess.Role() != route.RequiredRole {
		return redirect(g.cfg.HomePath)
	}

	return render()
}

// RedirectIfAuthenticated is the inverse guard for login/registration
// views: authenticated sessions are sent to the main content path,
// anonymous ones render.
func (g *Guard) RedirectIfAuthenticated(ctx context.Context, route Route) Decision {
	if g.state.Current().Authenticated {
		return redirect(g.cfg.ContentPath)
	}
	return render()
}

// Visit resolves a path to its route and guards it. Unknown paths resolve
// to the configured default redirect.
func (g *Guard) Visit(ctx context.Context, path string) Decision {
	route, ok := g.routes[path]
	if !ok {
		return redirect(g.cfg.DefaultRedirect)
	}
	return g.Check(ctx, route)
}

// Route looks up a registered route by path.
func (g *Guard) Route(path string) (Route, bool) {
	r, ok := g.routes[path]
	return r, ok
}
