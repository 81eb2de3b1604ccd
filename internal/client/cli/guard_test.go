package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
)

func TestGuards(t *testing.T) {
	user := &models.User{ID: 1, Username: "alice"}

	tests := []struct {
		name    string
		route   Route
		current *models.User
		want    Decision
	}{
		{
			name:    "auth route admits logged-in user",
			route:   RouteTopics,
			current: user,
			want:    Decision{Allow: true},
		},
		{
			name:    "auth route redirects anonymous to home",
			route:   RouteFeed,
			current: nil,
			want:    Decision{Redirect: RouteHome},
		},
		{
			name:    "post route redirects anonymous to home",
			route:   RoutePost,
			current: nil,
			want:    Decision{Redirect: RouteHome},
		},
		{
			name:    "profile route redirects anonymous to home",
			route:   RouteProfile,
			current: nil,
			want:    Decision{Redirect: RouteHome},
		},
		{
			name:    "home admits anonymous",
			route:   RouteHome,
			current: nil,
			want:    Decision{Allow: true},
		},
		{
			name:    "home redirects logged-in user to topics",
			route:   RouteHome,
			current: user,
			want:    Decision{Redirect: RouteTopics},
		},
		{
			name:    "login redirects logged-in user to topics",
			route:   RouteLogin,
			current: user,
			want:    Decision{Redirect: RouteTopics},
		},
		{
			name:    "register admits anonymous",
			route:   RouteRegister,
			current: nil,
			want:    Decision{Allow: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := guardFor(tc.route)(tc.current)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGuards_ExactComplement(t *testing.T) {
	for _, current := range []*models.User{nil, {ID: 2, Username: "bob"}} {
		auth := AuthGuard(current)
		noAuth := NoAuthGuard(current)
		require.NotEqual(t, auth.Allow, noAuth.Allow)
	}
}

func TestNavigate(t *testing.T) {
	t.Run("denied navigation lands on the redirect route", func(t *testing.T) {
		store, _ := newSessionStore(t)
		a := &App{session: store, route: RouteHome}

		require.False(t, a.navigate(RouteFeed))
		require.Equal(t, RouteHome, a.route)
	})

	t.Run("allowed navigation commits the target", func(t *testing.T) {
		store, _ := newSessionStore(t)
		loginAs(t, store, 1, "alice")
		a := &App{session: store, route: RouteHome}

		require.True(t, a.navigate(RouteFeed))
		require.Equal(t, RouteFeed, a.route)
	})

	t.Run("logged-in user cannot reach the login screen", func(t *testing.T) {
		store, _ := newSessionStore(t)
		loginAs(t, store, 1, "alice")
		a := &App{session: store, route: RouteTopics}

		require.False(t, a.navigate(RouteLogin))
		require.Equal(t, RouteTopics, a.route)
	})
}
