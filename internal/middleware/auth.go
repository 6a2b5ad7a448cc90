package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/ballgenius/ballgenius-backend/internal/authctx"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	authClient *auth.Client
	adminUIDs  map[string]struct{}
}

func NewAuthMiddleware(ctx context.Context, adminUIDs []string) (*AuthMiddleware, error) {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "FIREBASE_PROJECT_ID is not set")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	admins := make(map[string]struct{}, len(adminUIDs))
	for _, uid := range adminUIDs {
		if uid = strings.TrimSpace(uid); uid != "" {
			admins[uid] = struct{}{}
		}
	}
	return &AuthMiddleware{authClient: client, adminUIDs: admins}, nil
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := m.verify(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		m.setUID(c, uid)
		return next(c)
	}
}

// OptionalAuth resolves the UID when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid, err := m.verify(c); err == nil {
			m.setUID(c, uid)
		}
		return next(c)
	}
}

// RequireAdmin gates settlement and sync endpoints: a valid token whose UID is
// not on the allowlist gets 403, everything else 401.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := m.verify(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		if _, ok := m.adminUIDs[uid]; !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin_only"})
		}
		m.setUID(c, uid)
		return next(c)
	}
}

func (m *AuthMiddleware) verify(c echo.Context) (string, error) {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", echo.ErrUnauthorized
	}
	tokenStr := strings.TrimPrefix(authz, "Bearer ")
	token, err := m.authClient.VerifyIDToken(c.Request().Context(), tokenStr)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}

func (m *AuthMiddleware) setUID(c echo.Context, uid string) {
	c.Set("uid", uid)
	req := c.Request()
	c.SetRequest(req.WithContext(authctx.WithUID(req.Context(), uid)))
}

func (m *AuthMiddleware) Client() *auth.Client {
	return m.authClient
}
