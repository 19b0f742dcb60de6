// Package token contains utilities for issuing tokens and carrying the
// authenticated identity through the request context.
package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iceadmin/foodgram/internal/env"
	"github.com/iceadmin/foodgram/internal/jwt"
	"github.com/iceadmin/foodgram/internal/role"
)

const (
	refreshTokenBytes = 32

	RefreshTokenLifetime = 14 * 24 * time.Hour
)

var ErrNoUserID = errors.New("no user id in context")

// NewAccessToken signs a JWT for the user with the configured app secret.
func NewAccessToken(params jwt.JWTParams, e *env.Env) (string, error) {
	secret := e.Config.AppSecret.Value
	if secret == "" {
		return "", errors.New("app secret not configured")
	}
	version := e.Config.AppSecret.Version
	if version == "" {
		version = jwt.DefaultKID
	}

	token, err := jwt.GenerateJWT(params, []byte(secret), version)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

// NewRefreshToken creates an opaque refresh token of the form
// "<userid>.<random>". The random segment carries all the entropy; the id
// prefix only aids debugging.
func NewRefreshToken(userID string) (string, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Reader.Read(raw); err != nil {
		return "", fmt.Errorf("creating refresh token: %w", err)
	}
	return fmt.Sprintf("%s.%s", userID, base64.RawURLEncoding.EncodeToString(raw)), nil
}

// FromBearerHeader extracts the credential from an
// "Authorization: Bearer <token>" header value.
func FromBearerHeader(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	credential := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return credential, credential != ""
}

type userIDKeyType struct{}

var userIDKey userIDKeyType

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id, nil
	}
	return 0, ErrNoUserID
}

type roleKeyType struct{}

var roleKey roleKeyType

func RoleWithCtx(ctx context.Context, r role.Role) context.Context {
	return context.WithValue(ctx, roleKey, r)
}

func RoleFromCtx(ctx context.Context) role.Role {
	if r, ok := ctx.Value(roleKey).(role.Role); ok {
		return r
	}
	return role.RoleUnknown
}
