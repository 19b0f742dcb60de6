// Package middleware contains middleware functions for the API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/env"
	fgJwt "github.com/iceadmin/foodgram/internal/jwt"
	"github.com/iceadmin/foodgram/internal/log"
	"github.com/iceadmin/foodgram/internal/role"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")

		allowedOrigin := e.Config.HostOrigin
		if e.Config.Env != "PROD" && origin != "" {
			// In dev mode, allow all origins
			allowedOrigin = origin
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Authenticate validates a bearer access token when one is present and
// stores the caller's identity in the request context. Requests without an
// Authorization header pass through anonymously; requests with a bad token
// are rejected.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		rawToken, ok := token.FromBearerHeader(header)
		if !ok {
			e.Logger.ErrorContext(r.Context(), "malformed authorization header")
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		secret := e.Config.AppSecret.Value
		if secret == "" {
			e.Logger.ErrorContext(r.Context(), "app secret not configured")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		secretVersion := e.Config.AppSecret.Version
		if secretVersion == "" {
			secretVersion = fgJwt.DefaultKID
		}

		accessJwt, err := fgJwt.ValidateJWT(rawToken, secretVersion, []byte(secret))
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			e.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if err != nil {
			e.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		sub, err := accessJwt.Claims.GetSubject()
		if err != nil {
			e.Logger.ErrorContext(r.Context(), "failed to extract subject from jwt", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		userID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			e.Logger.ErrorContext(r.Context(), "failed to parse user id", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		claims, ok := accessJwt.Claims.(jwtlib.MapClaims)
		if !ok {
			e.Logger.ErrorContext(r.Context(), "unexpected claims type")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		roleClaim, _ := claims["role"].(string)

		r = r.WithContext(log.AppendCtx(r.Context(), slog.Int64("user-id", userID)))
		r = r.WithContext(token.UserIDWithCtx(r.Context(), userID))
		r = r.WithContext(token.RoleWithCtx(r.Context(), role.ToRole(roleClaim)))

		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose authenticated identity is missing or
// below the required role. It must run after Authenticate.
func RequireRole(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e := env.EnvFromCtx(r.Context())
			requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)

			if _, err := token.UserIDFromCtx(r.Context()); err != nil {
				e.Logger.ErrorContext(r.Context(), "request is not authenticated")
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "authentication required", requestID)
				return
			}

			userRole := token.RoleFromCtx(r.Context())
			if userRole < requiredRole {
				e.Logger.ErrorContext(r.Context(), "insufficient permissions",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
