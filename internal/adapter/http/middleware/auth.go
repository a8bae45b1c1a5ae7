package middleware

import (
	"net/http"
	"strings"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
	"hospital_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ActorContextKey is where the authenticated Actor lives in the gin context.
const ActorContextKey = "actor"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Bearer token required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errNotApproved  = pkg.NewDomainErrorSimple("ACCOUNT_PENDING", "Account is pending approval", http.StatusForbidden)
	errAccessDenied = pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
)

// Auth validates the bearer token, requires an approved account, and
// optionally restricts the route to a set of roles. An empty role list allows
// every approved account.
func Auth(tokens interfaces.ITokenService, allowedRoles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		actor, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		if !actor.Approved {
			c.AbortWithStatusJSON(errNotApproved.HTTPStatus, errNotApproved.ToHTTPError())
			return
		}

		if len(allowedRoles) > 0 {
			allowed := false
			for _, role := range allowedRoles {
				if role == actor.Role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(errAccessDenied.HTTPStatus, errAccessDenied.ToHTTPError())
				return
			}
		}

		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

// ActorFrom returns the Actor the Auth middleware stored for this request.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(ActorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
