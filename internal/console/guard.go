package console

import (
	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/logger"
)

// Route identifies a console screen.
type Route string

const (
	RouteLogin    Route = "login"
	RouteHome     Route = "home"
	RouteBuyers   Route = "buyer"
	RouteProducts Route = "product"
	RouteOrders   Route = "order"
	RouteUsers    Route = "user"
)

// Decision is the guard's verdict for one navigation attempt.
type Decision int

const (
	Allowed Decision = iota
	RedirectToLogin
)

// Guard gates navigation to protected screens on the presence of a
// session token. No validity or expiry check happens here: an expired but
// present token passes, and the first backend call rejects it instead.
type Guard struct {
	session session.Store
}

// NewGuard creates a guard over the session store.
func NewGuard(store session.Store) *Guard {
	return &Guard{session: store}
}

// Check decides one navigation attempt. The login route is never guarded.
func (g *Guard) Check(to Route) Decision {
	if to == RouteLogin {
		return Allowed
	}
	if g.session.Token() != "" {
		return Allowed
	}
	return RedirectToLogin
}

// Router tracks the current screen and applies the guard on every
// navigation.
type Router struct {
	guard   *Guard
	current Route
	log     *logger.Logger
}

// NewRouter creates a router starting at the login screen.
func NewRouter(guard *Guard, log *logger.Logger) *Router {
	if log == nil {
		log = logger.NewDefault("router")
	}
	return &Router{guard: guard, current: RouteLogin, log: log}
}

// Navigate attempts to move to the given screen. A denied attempt
// redirects to login and reports false.
func (r *Router) Navigate(to Route) bool {
	if r.guard.Check(to) == RedirectToLogin {
		r.log.WithField("route", string(to)).Info("navigation denied, redirecting to login")
		r.current = RouteLogin
		return false
	}
	r.current = to
	return true
}

// Current returns the active screen.
func (r *Router) Current() Route {
	return r.current
}
