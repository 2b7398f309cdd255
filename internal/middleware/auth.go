package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/parley-dev/parley/internal/domain"
)

// Key to store the user claims in the request context.
// Exported so handler tests can inject an identity directly.
type key int

const UserClaimsKey key = 0

// Identity decodes the session layer's access token into a context user.
// Authentication (credentials, token issuing) happens elsewhere; this
// middleware only trusts what the token's signature proves.
type Identity struct {
	secret []byte
}

func NewIdentity(secret string) *Identity {
	return &Identity{secret: []byte(secret)}
}

func (i *Identity) decode(r *http.Request) (*domain.User, error) {
	accessCookie, err := r.Cookie("accessToken")
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(accessCookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	username, _ := claims["username"].(string)

	return &domain.User{Id: domain.UserId(uid), Username: username}, nil
}

// Required rejects requests without a valid identity.
func (i *Identity) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := i.decode(r)
		if err != nil {
			http.Error(w, "Please sign-in", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UserClaimsKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the identity when present and continues anonymously
// otherwise, for read paths that take an optional requester.
func (i *Identity) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := i.decode(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), UserClaimsKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the decoded user, nil for anonymous requests.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
