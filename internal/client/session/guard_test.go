package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func authedGuard(t *testing.T, role string) *Guard {
	t.Helper()
	st := newTestState(&fakeStore{})
	if role != "-" {
		payload := map[string]any{"uid": "u1"}
		if role != "" {
			payload["role"] = role
		}
		require.NoError(t, st.Login(context.Background(), makeToken(t, payload)))
	}
	return NewGuard(st, DefaultGuardConfig(), DefaultRoutes())
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	g := authedGuard(t, "-") // never logged in
	ctx := context.Background()

	for _, path := range []string{PathFavorites, PathSubmit, PathModerate, PathUsers, PathStats, PathProfile, PathManage} {
		d := g.Visit(ctx, path)
		require.False(t, d.Render, "path %s must not render for anonymous", path)
		require.Equal(t, PathLogin, d.RedirectTo, "path %s", path)
	}
}

func TestGuard_PublicViewsRenderForAnonymous(t *testing.T) {
	g := authedGuard(t, "-")
	ctx := context.Background()

	for _, path := range []string{PathHome, PathArticles, PathLogin, PathRegister} {
		require.True(t, g.Visit(ctx, path).Render, "path %s", path)
	}
}

func TestGuard_RoleGrid(t *testing.T) {
	roles := []string{"user", "user_admin", "article_admin", "moderator", "analyst"}
	gated := map[string]Role{
		PathModerate: RoleModerator,
		PathUsers:    RoleUserAdmin,
		PathStats:    RoleAnalyst,
		PathManage:   RoleArticleAdmin,
	}
	ctx := context.Background()

	for _, role := range roles {
		g := authedGuard(t, role)
		for path, required := range gated {
			d := g.Visit(ctx, path)
			if ParseRole(role) == required {
				require.True(t, d.Render, "role %s visiting %s must render", role, path)
			} else {
				require.False(t, d.Render, "role %s visiting %s must not render", role, path)
				require.Equal(t, PathHome, d.RedirectTo,
					"role mismatch redirects home, not to login")
			}
		}

		// views with no required role render for every authenticated role
		for _, path := range []string{PathFavorites, PathSubmit, PathProfile, PathArticles} {
			require.True(t, g.Visit(ctx, path).Render, "role %s visiting %s", role, path)
		}
	}
}

func TestGuard_RoleMatchingIsCaseInsensitive(t *testing.T) {
	g := authedGuard(t, "MODERATOR")
	require.True(t, g.Visit(context.Background(), PathModerate).Render)
}

func TestGuard_ModeratorScenario(t *testing.T) {
	// token payload {"uid":"u1","role":"moderator"}
	g := authedGuard(t, "moderator")
	ctx := context.Background()

	moderation, ok := g.Route(PathModerate)
	require.True(t, ok)
	require.True(t, g.Check(ctx, moderation).Render)

	asArticleAdmin := moderation
	asArticleAdmin.RequiredRole = RoleArticleAdmin
	d := g.Check(ctx, asArticleAdmin)
	require.False(t, d.Render)
	require.Equal(t, PathHome, d.RedirectTo)
}

func TestGuard_RedirectIfAuthenticated(t *testing.T) {
	ctx := context.Background()

	g := authedGuard(t, "user")
	for _, path := range []string{PathLogin, PathRegister} {
		d := g.Visit(ctx, path)
		require.False(t, d.Render)
		require.Equal(t, PathArticles, d.RedirectTo)
	}

	anon := authedGuard(t, "-")
	for _, path := range []string{PathLogin, PathRegister} {
		require.True(t, anon.Visit(ctx, path).Render)
	}
}

func TestGuard_UnknownPathUsesDefaultRedirect(t *testing.T) {
	ctx := context.Background()

	g := authedGuard(t, "-")
	d := g.Visit(ctx, "/no-such-view")
	require.False(t, d.Render)
	require.Equal(t, PathLogin, d.RedirectTo)

	// the default is configurable
	st := newTestState(&fakeStore{})
	cfg := DefaultGuardConfig()
	cfg.DefaultRedirect = PathHome
	g2 := NewGuard(st, cfg, DefaultRoutes())
	require.Equal(t, PathHome, g2.Visit(ctx, "/no-such-view").RedirectTo)
}

func TestGuard_BasicUserWithoutRole(t *testing.T) {
	// authenticated but roleless token: renders auth views, not role-gated ones
	g := authedGuard(t, "")
	ctx := context.Background()

	require.True(t, g.Visit(ctx, PathFavorites).Render)

	d := g.Visit(ctx, PathModerate)
	require.False(t, d.Render)
	require.Equal(t, PathHome, d.RedirectTo)
}
