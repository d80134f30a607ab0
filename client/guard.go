package client

import (
	"net/url"

	"github.com/realtorcrm/authsvc/domain"
)

// Decision is the outcome of a route guard evaluation. When Allow is
// false, RedirectTo names the route to send the user to instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// EvaluateRoute gates a protected route against a session snapshot.
//
// An unauthenticated session is sent to login with the requested path
// preserved in the "next" query parameter. An authenticated session
// whose role is not yet known is permitted: the profile may still be
// loading, and blocking on it would bounce every hard refresh through
// the dashboard. Only a known role outside the allowed set redirects.
func EvaluateRoute(snap Snapshot, allowed []domain.Role, requestedPath string) Decision {
	if !snap.IsAuthenticated() {
		return redirect(PathLogin + "?next=" + url.QueryEscape(requestedPath))
	}

	role := snap.UserType()
	if role == "" || len(allowed) == 0 {
		return allow()
	}

	for _, r := range allowed {
		if role == r {
			return allow()
		}
	}
	return redirect(PathDashboard)
}

// EvaluateGuest gates guest-only routes such as login and signup. An
// authenticated session is sent home.
func EvaluateGuest(snap Snapshot) Decision {
	if snap.IsAuthenticated() {
		return redirect(PathHome)
	}
	return allow()
}

// EvaluateVerificationEntry gates the verification screen: without a
// pending signup context there is no code to enter, so the user is sent
// back to the signup entry point.
func EvaluateVerificationEntry(v domain.VerificationState) Decision {
	if v.IsEmpty() {
		return redirect(PathSignupOptions)
	}
	return allow()
}
