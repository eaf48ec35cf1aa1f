package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"job-finder-backend/config"
	"job-finder-backend/internal/delivery/http/middleware"
	"job-finder-backend/internal/domain"
	"job-finder-backend/pkg/token"
)

func testConfig() *config.Config {
	secrets := func(prefix string) config.RoleSecrets {
		return config.RoleSecrets{
			AccessKey:     prefix + "-access",
			ActivationKey: prefix + "-activation",
			PasswordKey:   prefix + "-password",
		}
	}
	return &config.Config{
		Roles: map[string]config.RoleSecrets{
			config.RoleAdmin:     secrets("admin"),
			config.RoleCandidate: secrets("candidate"),
			config.RoleRecruiter: secrets("recruiter"),
		},
		AdminURL:     "http://admin.test",
		CandidateURL: "http://candidate.test",
		RecruiterURL: "http://recruiter.test",
	}
}

// identityProbe records what the middleware made visible to the handler, both
// through gin keys and through the request context.
func identityProbe(gotGinID, gotCtxRole *any) gin.HandlerFunc {
	return func(c *gin.Context) {
		*gotGinID = c.GetInt64(string(domain.KeyUserID))
		*gotCtxRole = c.Request.Context().Value(domain.KeyUserRole)
		c.Status(http.StatusOK)
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	tokens := token.NewManager(cfg)

	var gotGinID, gotCtxRole any
	router := gin.New()
	router.GET("/private", middleware.Authorize(tokens, domain.RoleCandidate), identityProbe(&gotGinID, &gotCtxRole))

	t.Run("valid token passes and sets identity", func(t *testing.T) {
		signed, err := tokens.Sign(domain.RoleCandidate, token.TypeAccess, 42, "jane@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotGinID)
		assert.Equal(t, domain.RoleCandidate, gotCtxRole)
	})

	t.Run("missing header is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ForbiddenError")
		assert.Contains(t, rec.Body.String(), "Invalid or expired authorization token.")
	})

	t.Run("token from another role is forbidden", func(t *testing.T) {
		signed, err := tokens.Sign(domain.RoleAdmin, token.TypeAccess, 1, "root@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("activation token never opens an access route", func(t *testing.T) {
		signed, err := tokens.Sign(domain.RoleCandidate, token.TypeActivation, 42, "jane@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthorizeAny(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	tokens := token.NewManager(cfg)

	var gotGinID, gotCtxRole any
	router := gin.New()
	router.GET("/shared", middleware.AuthorizeAny(tokens), identityProbe(&gotGinID, &gotCtxRole))

	t.Run("accepts tokens from every role", func(t *testing.T) {
		for _, role := range []string{domain.RoleAdmin, domain.RoleCandidate, domain.RoleRecruiter} {
			signed, err := tokens.Sign(role, token.TypeAccess, 7, "who@example.com")
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/shared", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, role, gotCtxRole)
		}
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/shared", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthorizeActivation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	tokens := token.NewManager(cfg)

	router := gin.New()
	router.GET("/confirm", middleware.AuthorizeActivation(cfg, tokens), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("valid query token passes", func(t *testing.T) {
		signed, err := tokens.Sign(domain.RoleCandidate, token.TypeActivation, 42, "jane@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/confirm?token="+signed, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad token redirects to the frontend with the reason", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/confirm?token=broken", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		location := rec.Header().Get("Location")
		assert.Contains(t, location, "http://candidate.test/pages/auth/activate")
		assert.Contains(t, location, "error=")
	})

	t.Run("recruiter failures land on the recruiter frontend", func(t *testing.T) {
		// An expired token still carries a readable role claim, which picks
		// the redirect target.
		signed, err := tokens.Sign(domain.RoleRecruiter, token.TypePassword, 42, "jane@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/confirm?token="+signed, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "http://recruiter.test/pages/auth/activate")
	})
}
