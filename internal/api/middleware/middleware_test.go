package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/config"
	"github.com/iceadmin/foodgram/internal/env"
	fgJwt "github.com/iceadmin/foodgram/internal/jwt"
	"github.com/iceadmin/foodgram/internal/log"
	"github.com/iceadmin/foodgram/internal/role"
)

const testSecret = "test-secret-32-bytes-long-123456"

func testEnv() *env.Env {
	return &env.Env{
		Logger: log.NullLogger(),
		Config: &config.Config{
			AppSecret: config.AppSecret{Value: testSecret, Version: "1"},
		},
	}
}

func accessToken(t *testing.T, userID int64, r role.Role) string {
	t.Helper()
	raw, err := fgJwt.GenerateJWT(fgJwt.JWTParams{
		UserID: strconv.FormatInt(userID, 10),
		Role:   r.String(),
	}, []byte(testSecret), "1")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return raw
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) apiError.ErrorCode {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body.Code
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   apiError.ErrorCode
		wantUserID int64
		wantAnon   bool
	}{
		{
			name:       "no header passes through anonymously",
			header:     "",
			wantStatus: http.StatusOK,
			wantAnon:   true,
		},
		{
			name:       "valid bearer token",
			header:     "Bearer VALID",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotErr error
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotErr = token.UserIDFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			header := tt.header
			if header == "Bearer VALID" {
				header = "Bearer " + accessToken(t, 42, role.RoleUser)
			}

			r := httptest.NewRequest("GET", "/api/users/me", nil)
			r = r.WithContext(env.WithCtx(r.Context(), testEnv()))
			if header != "" {
				r.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			Authenticate(next).ServeHTTP(rec, r)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeErrorCode(t, rec); got != tt.wantCode {
					t.Errorf("error code = %q, want %q", got, tt.wantCode)
				}
				return
			}
			if tt.wantAnon {
				if gotErr == nil {
					t.Error("expected no identity in context for anonymous request")
				}
				return
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user id in context = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	// A token signed with a different secret fails validation outright.
	raw, err := fgJwt.GenerateJWT(fgJwt.JWTParams{UserID: "1", Role: "user"},
		[]byte("another-secret-32-bytes-long!!!!"), "1")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	r := httptest.NewRequest("GET", "/api/users/me", nil)
	r = r.WithContext(env.WithCtx(r.Context(), testEnv()))
	r.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler reached with invalid token")
	})).ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		userRole   role.Role
		required   role.Role
		anonymous  bool
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:       "user passes user gate",
			userRole:   role.RoleUser,
			required:   role.RoleUser,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin passes user gate",
			userRole:   role.RoleAdmin,
			required:   role.RoleUser,
			wantStatus: http.StatusOK,
		},
		{
			name:       "user blocked from admin gate",
			userRole:   role.RoleUser,
			required:   role.RoleAdmin,
			wantStatus: http.StatusForbidden,
			wantCode:   apiError.InsufficientPermissions,
		},
		{
			name:       "anonymous rejected",
			anonymous:  true,
			required:   role.RoleUser,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiError.InvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/users/me", nil)
			ctx := env.WithCtx(r.Context(), testEnv())
			if !tt.anonymous {
				ctx = token.UserIDWithCtx(ctx, 42)
				ctx = token.RoleWithCtx(ctx, tt.userRole)
			}
			r = r.WithContext(ctx)
			rec := httptest.NewRecorder()

			RequireRole(tt.required)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, r)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if got := decodeErrorCode(t, rec); got != tt.wantCode {
					t.Errorf("error code = %q, want %q", got, tt.wantCode)
				}
			}
		})
	}
}

func TestAddCors(t *testing.T) {
	e := testEnv()
	e.Config.HostOrigin = "https://foodgram.example"
	e.Config.Env = config.EnvProd

	r := httptest.NewRequest("OPTIONS", "/api/recipes", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	r.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	AddCors(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler reached on preflight")
	})).ServeHTTP(rec, r)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://foodgram.example" {
		t.Errorf("allowed origin = %q, want the configured host origin", got)
	}
}
