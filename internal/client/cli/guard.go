package cli

import "github.com/thibautlfr-studylab/mdd-cli/internal/client/models"

// Route identifies a screen of the terminal UI.
type Route string

const (
	// RouteHome is the unauthenticated landing screen.
	RouteHome Route = "home"

	RouteLogin    Route = "login"
	RouteRegister Route = "register"

	// RouteTopics is the authenticated landing screen.
	RouteTopics Route = "topics"

	RouteFeed    Route = "feed"
	RouteArticle Route = "article"
	RoutePost    Route = "post"
	RouteProfile Route = "profile"
)

// Decision is the outcome of a guard check. When Allow is false, Redirect
// names the screen the user is sent to instead.
type Decision struct {
	Allow    bool
	Redirect Route
}

// Guard is a pure predicate over a session snapshot, consulted before a
// navigation commits. Guards never perform work themselves; the redirect is
// an instruction for the navigation layer.
type Guard func(current *models.User) Decision

// AuthGuard admits only logged-in users; everyone else goes home.
func AuthGuard(current *models.User) Decision {
	if current != nil {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteHome}
}

// NoAuthGuard is the exact complement: it admits only logged-out users and
// sends authenticated ones to the topics screen.
func NoAuthGuard(current *models.User) Decision {
	if current == nil {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteTopics}
}

// guardFor returns the guard protecting a route.
func guardFor(route Route) Guard {
	switch route {
	case RouteHome, RouteLogin, RouteRegister:
		return NoAuthGuard
	default:
		return AuthGuard
	}
}
