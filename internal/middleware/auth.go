package middleware

import (
	"errors"
	"net/http"
	"strings"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/session"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxActor  = "actor"
	ctxClaims = "claims"

	// LoginPath is where an ended session is sent.
	LoginPath = "/login"
)

// Messages returned by the guards.
const (
	MsgMissingToken   = "Authorization token is missing"
	MsgBadTokenFormat = "Authorization header must be Bearer <token>"
	MsgInvalidToken   = "Invalid token"
	MsgSessionEnded   = "Your session has ended, please sign in again"
	MsgForbidden      = "You do not have access to this page"
	MsgNoHospital     = "Your account is not linked to a hospital yet"
)

// Auth verifies bearer tokens and puts the actor on the request.
type Auth struct {
	tokens  *session.Manager
	revoker session.Revoker
	logger  *zap.Logger
}

func NewAuth(tokens *session.Manager, revoker session.Revoker, logger *zap.Logger) *Auth {
	return &Auth{tokens: tokens, revoker: revoker, logger: logger.Named("auth")}
}

// Required rejects requests without a live session.
func (a *Auth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Header must be "Bearer <token>"
		raw, msg := bearer(c.GetHeader("Authorization"))
		if msg != "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, msg, gin.H{"redirect": LoginPath})
			c.Abort()
			return
		}

		// 2. Verify signature and expiry
		claims, err := a.tokens.Parse(raw)
		if errors.Is(err, session.ErrExpiredToken) {
			a.sessionEnded(c, claims)
			return
		}
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, MsgInvalidToken, gin.H{"redirect": LoginPath})
			c.Abort()
			return
		}

		// 3. Signed out elsewhere
		revoked, err := a.revoker.IsRevoked(c.Request.Context(), claims.TokenID())
		if err != nil {
			a.logger.Warn("revocation lookup failed", zap.String("jti", claims.TokenID()), zap.Error(err))
		}
		if revoked {
			a.sessionEnded(c, claims)
			return
		}

		c.Set(ctxActor, claims.Actor())
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// sessionEnded answers an expired or revoked token. The session_expired
// notice is true only on the first request after the token expired. A
// logout consumes it up front.
func (a *Auth) sessionEnded(c *gin.Context, claims *session.Claims) {
	first, err := a.revoker.FirstNotice(c.Request.Context(), claims.TokenID())
	if err != nil {
		a.logger.Warn("session notice lookup failed", zap.String("jti", claims.TokenID()), zap.Error(err))
	}
	utils.APIResponse(c, http.StatusUnauthorized, false, MsgSessionEnded, gin.H{
		"redirect":        LoginPath,
		"session_expired": first,
	})
	c.Abort()
}

func bearer(header string) (token, msg string) {
	if header == "" {
		return "", MsgMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", MsgBadTokenFormat
	}
	return parts[1], ""
}

// RequireAccess enforces a route guard on the actor set by Auth.
func RequireAccess(req access.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch access.Decide(req, ActorFrom(c)) {
		case access.Allow:
			c.Next()
		case access.RedirectLogin:
			utils.APIResponse(c, http.StatusUnauthorized, false, MsgMissingToken, gin.H{"redirect": LoginPath})
			c.Abort()
		case access.DenyNoHospital:
			utils.APIResponse(c, http.StatusForbidden, false, MsgNoHospital, gin.H{"reason": access.DenyNoHospital.String()})
			c.Abort()
		default:
			utils.APIResponse(c, http.StatusForbidden, false, MsgForbidden, gin.H{"reason": access.DenyRole.String()})
			c.Abort()
		}
	}
}

// ActorFrom returns the actor of the request, Anonymous if none was set.
func ActorFrom(c *gin.Context) access.Actor {
	if v, ok := c.Get(ctxActor); ok {
		if actor, ok := v.(access.Actor); ok {
			return actor
		}
	}
	return access.Anonymous
}

// ClaimsFrom returns the verified token claims, or nil.
func ClaimsFrom(c *gin.Context) *session.Claims {
	if v, ok := c.Get(ctxClaims); ok {
		claims, _ := v.(*session.Claims)
		return claims
	}
	return nil
}
