package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/agency-cms/errors"
	"github.com/johnquangdev/agency-cms/internal/usecase/auth"
	"github.com/johnquangdev/agency-cms/pkg/jwt"
)

func TestEchoAuth(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour, "agency-cms")
	svc := auth.NewAuthService("key", manager, nil, nil)
	valid, _, err := manager.GenerateAccessToken("admin", jwt.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	editor, _, _ := manager.GenerateAccessToken("someone", "editor")

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantApp  errors.ErrorCode
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantApp: errors.ErrorCode_UNAUTHENTICATED},
		{name: "wrong scheme", header: "Basic " + valid, wantCode: http.StatusUnauthorized, wantApp: errors.ErrorCode_UNAUTHENTICATED},
		{name: "garbage token", header: "Bearer nope", wantCode: http.StatusUnauthorized, wantApp: errors.ErrorCode_AUTH_INVALID_TOKEN},
		{name: "non-admin role", header: "Bearer " + editor, wantCode: http.StatusForbidden, wantApp: errors.ErrorCode_FORBIDDEN},
		{name: "valid token", header: "bearer " + valid, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/posts", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := EchoAuth(svc, nil)(func(c echo.Context) error {
				claims, ok := GetClaims(c)
				if !ok || claims.Subject != "admin" {
					t.Errorf("claims not set: %+v", claims)
				}
				return c.NoContent(http.StatusOK)
			})

			if err := h(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantApp == 0 {
				return
			}
			var body struct {
				Code errors.ErrorCode `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.wantApp {
				t.Errorf("code = %v, want %v", body.Code, tt.wantApp)
			}
		})
	}
}
