package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"job-finder-backend/config"
	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/token"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// setIdentity records the verified claims for the rest of the request. Gin
// keys serve the handlers; the request context serves the usecases.
func setIdentity(c *gin.Context, claims *token.Claims) {
	c.Set(string(domain.KeyUserID), claims.UserID)
	c.Set(string(domain.KeyUserEmail), claims.Email)
	c.Set(string(domain.KeyUserRole), claims.Role)

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Role)
	c.Request = c.Request.WithContext(ctx)
}

// Authorize gates a route group behind a valid access token for one role.
// Any failure, missing header included, is answered the same way.
func Authorize(tokens *token.Manager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusForbidden, "Invalid or expired authorization token.", "")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(role, token.TypeAccess, tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired authorization token.", "")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AuthorizeAny accepts an access token from any role; the role claim picks
// the secret set it is verified against. Used where all roles share one
// endpoint, like logout.
func AuthorizeAny(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		role := tokenRole(tokenString)
		if tokenString == "" || role == "" {
			response.Error(c, http.StatusForbidden, "Invalid or expired authorization token.", "")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(role, token.TypeAccess, tokenString)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired authorization token.", "")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// linkToken reads the token from the query string, as emailed links carry it,
// falling back to the Authorization header.
func linkToken(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	return bearerToken(c)
}

// tokenRole peeks at the unverified role claim so the right secret set can
// be selected. Verification still happens against that role's key.
func tokenRole(tokenString string) string {
	var claims token.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return ""
	}
	return claims.Role
}

func authorizeLink(cfg *config.Config, tokens *token.Manager, typ token.Type, failurePage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := linkToken(c)
		role := tokenRole(tokenString)

		redirectFailure := func(message string) {
			target := cfg.FrontendURL(role) + failurePage + "?error=" + url.QueryEscape(message)
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
		}

		if tokenString == "" || role == "" {
			redirectFailure("Invalid or expired token.")
			return
		}

		claims, err := tokens.Verify(role, typ, tokenString)
		if err != nil {
			redirectFailure("Invalid or expired token.")
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AuthorizeActivation validates emailed activation links. Failures redirect
// to the frontend activation page with the reason in the query string.
func AuthorizeActivation(cfg *config.Config, tokens *token.Manager) gin.HandlerFunc {
	return authorizeLink(cfg, tokens, token.TypeActivation, "/pages/auth/activate")
}

// AuthorizePasswordReset validates emailed password-reset tokens the same
// way.
func AuthorizePasswordReset(cfg *config.Config, tokens *token.Manager) gin.HandlerFunc {
	return authorizeLink(cfg, tokens, token.TypePassword, "/pages/auth/password_reset")
}
