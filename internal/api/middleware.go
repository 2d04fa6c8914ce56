package api

import (
	"strings"

	"github.com/company-site-api/internal/auth"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const identityKey = "admin_identity"

// requireAdmin rejects requests without a valid bearer token before any
// handler runs: 401 when no token is sent, 403 when it does not verify.
func requireAdmin(authSvc service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("middleware", "auth").Logger()

	return func(c *gin.Context) {
		identity, err := authSvc.Authorize(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Access denied")
			respondError(c, log, err, "")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>"; anything else yields "".
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentIdentity(c *gin.Context) *auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(*auth.Identity); ok {
			return identity
		}
	}
	return nil
}
