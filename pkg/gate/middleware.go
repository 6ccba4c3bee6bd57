package gate

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/redcrest/donorflow/pkg/profile"
)

// Verifier returns middleware that validates the request JWT from the
// Authorization header or the accessToken cookie.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromCookie)(next)
	}
}

// TokenFromCookie extracts the access token from the accessToken cookie.
func TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie("accessToken")
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AuthUserMiddleware resolves the authenticated actor from the verified JWT
// claims and stores it on the request context. Requests without a usable
// subject claim are rejected with 401.
func AuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			http.Error(w, "missing subject", http.StatusUnauthorized)
			return
		}
		profileID, err := uuid.Parse(sub)
		if err != nil {
			http.Error(w, "invalid subject", http.StatusUnauthorized)
			return
		}

		authUser := &AuthUser{ProfileID: profileID}
		if email, ok := claims["email"].(string); ok {
			authUser.Email = email
		}

		next.ServeHTTP(w, r.WithContext(WithAuthUser(r.Context(), authUser)))
	})
}

// PageAuthUser resolves the authenticated actor from the verified JWT when
// one is present and continues without an actor otherwise. Page routes
// redirect on a missing identity instead of answering 401, so resolution
// must not reject the request.
func PageAuthUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err == nil {
			if sub, _ := claims["sub"].(string); sub != "" {
				if profileID, err := uuid.Parse(sub); err == nil {
					authUser := &AuthUser{ProfileID: profileID}
					if email, ok := claims["email"].(string); ok {
						authUser.Email = email
					}
					r = r.WithContext(WithAuthUser(r.Context(), authUser))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware enforcing the gate on an API route.
// Unauthenticated requests get 401, authenticated requests without one of
// the allowed roles get 403.
func RequireRole(g *Gate, allowed ...profile.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, _ := AuthUserFromContext(r.Context())
			switch err := g.Require(r.Context(), actor, allowed...); err {
			case nil:
				next.ServeHTTP(w, r)
			case ErrUnauthenticated:
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
			default:
				http.Error(w, "Forbidden", http.StatusForbidden)
			}
		})
	}
}

// RequirePageRole returns middleware enforcing the gate on a page route.
// Unauthenticated visitors are redirected to loginURL; authenticated
// visitors without one of the allowed roles are redirected to fallbackURL
// instead of seeing an error page.
func RequirePageRole(g *Gate, loginURL, fallbackURL string, allowed ...profile.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, _ := AuthUserFromContext(r.Context())
			switch err := g.Require(r.Context(), actor, allowed...); err {
			case nil:
				next.ServeHTTP(w, r)
			case ErrUnauthenticated:
				http.Redirect(w, r, loginURL, http.StatusFound)
			default:
				http.Redirect(w, r, fallbackURL, http.StatusFound)
			}
		})
	}
}
