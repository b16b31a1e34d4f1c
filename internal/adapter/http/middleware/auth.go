package middleware

import (
	"net/http"
	"strings"

	"autoservice/internal/infrastructure/auth"
	"autoservice/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
)

type TokenParser interface {
	Parse(token string) (auth.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller's
// identity on the context.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		identity, err := parser.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin() {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin lets admins through and otherwise requires the path
// parameter to equal the caller's user id.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || (!identity.IsAdmin() && identity.UserID != c.Param(param)) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireSelf requires the path parameter to equal the caller's user id,
// admins included.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || identity.UserID != c.Param(param) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
