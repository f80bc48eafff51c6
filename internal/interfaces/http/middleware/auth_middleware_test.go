package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"agency-platform.backend/internal/domain/entities"
	"agency-platform.backend/pkg/jwt"
)

func newAuthTestRouter(t *testing.T, svc *jwt.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "actor missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": actor.Role})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+"garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	issuer := jwt.NewJWTService("secret", -time.Minute, -time.Minute)
	pair, err := issuer.GenerateTokenPair(uuid.New(), "a@b.com", string(entities.UserRoleAgency))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := newAuthTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidTokenSetsActor(t *testing.T) {
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "a@b.com", string(entities.UserRoleAgency))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	r := newAuthTestRouter(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	r := gin.New()
	r.GET("/open", OptionalAuthMiddleware(svc), func(c *gin.Context) {
		if _, ok := GetActor(c); ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"anonymous":true}` {
		t.Fatalf("expected anonymous body, got %s", w.Body.String())
	}
}

func TestOptionalAuthMiddleware_ResolvesActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewJWTService("secret", time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "v@b.com", string(entities.UserRoleProfileOwner))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	r := gin.New()
	r.GET("/open", OptionalAuthMiddleware(svc), func(c *gin.Context) {
		visitor := VisitorID(c)
		c.JSON(http.StatusOK, gin.H{"valid": visitor.Valid, "id": visitor.UUID})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"id":"`+userID.String()+`","valid":true}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(actor *entities.Actor) *gin.Engine {
		r := gin.New()
		if actor != nil {
			r.Use(func(c *gin.Context) {
				c.Set(ActorKey, *actor)
				c.Next()
			})
		}
		r.GET("/admin", RequireRole(entities.UserRoleAdmin), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	// no actor at all
	w := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without actor, got %d", w.Code)
	}

	// wrong role
	w = httptest.NewRecorder()
	agency := &entities.Actor{UserID: uuid.New(), Role: entities.UserRoleAgency}
	newRouter(agency).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", w.Code)
	}

	// matching role
	w = httptest.NewRecorder()
	admin := &entities.Actor{UserID: uuid.New(), Role: entities.UserRoleAdmin}
	newRouter(admin).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}
