package session

// Navigation paths used by the terminal client. Mirrors the layout of the
// RedHub web front end.
const (
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathHome      = "/"
	PathArticles  = "/articles"
	PathManage    = "/articles/manage"
	PathSubmit    = "/submit"
	PathFavorites = "/favorites"
	PathModerate  = "/moderation"
	PathUsers     = "/users"
	PathStats     = "/stats"
	PathProfile   = "/profile"
)

// DefaultRoutes is the client's route table. Public list/detail views carry
// no requirements; admin views each require their exact role.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathLogin, AnonymousOnly: true},
		{Path: PathRegister, AnonymousOnly: true},
		{Path: PathHome},
		{Path: PathArticles},
		{Path: PathManage, RequiresAuth: true, RequiredRole: RoleArticleAdmin},
		{Path: PathSubmit, RequiresAuth: true},
		{Path: PathFavorites, RequiresAuth: true},
		{Path: PathModerate, RequiresAuth: true, RequiredRole: RoleModerator},
		{Path: PathUsers, RequiresAuth: true, RequiredRole: RoleUserAdmin},
		{Path: PathStats, RequiresAuth: true, RequiredRole: RoleAnalyst},
		{Path: PathProfile, RequiresAuth: true},
	}
}

// DefaultGuardConfig routes anonymous users to login, role mismatches to
// home, and authenticated visitors of login/register to the article list.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		LoginPath:       PathLogin,
		HomePath:        PathHome,
		ContentPath:     PathArticles,
		DefaultRedirect: PathLogin,
	}
}
