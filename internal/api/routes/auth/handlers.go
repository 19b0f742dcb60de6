// Package auth contains handlers for credential issuance and revocation.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/argon2id"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	fgJson "github.com/iceadmin/foodgram/internal/json"
	"github.com/iceadmin/foodgram/internal/jwt"
	"github.com/iceadmin/foodgram/internal/role"
)

// HandleTokenLogin godoc
//
//	@Summary	Issue an access/refresh token pair.
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body		TokenLoginRequest	true	"Credentials"
//	@Success	200		{object}	TokenLoginResponse
//	@Failure	401		{object}	apiError.Error
//	@Router		/api/auth/token/login [POST]
func HandleTokenLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request TokenLoginRequest
	env.Logger.DebugContext(ctx, "reading request body")
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := fgJson.DecodeJSON(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	// Retrieve user information
	env.Logger.DebugContext(ctx, "retrieving user information")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user with email does not exist", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to retrieve user information", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Blocked accounts cannot authenticate
	if !user.IsActive {
		env.Logger.ErrorContext(ctx, "user is blocked", slog.Int64("user-id", user.ID))
		_ = apiError.EncodeError(w, apiError.UserBlocked, "account is blocked", requestID)
		return
	}

	// Compare passwords
	env.Logger.DebugContext(ctx, "comparing passwords")
	match, err := argon2id.ComparePassword(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to compare passwords", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.ErrorContext(ctx, "given password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	}

	// Create access token
	env.Logger.DebugContext(ctx, "generating access token")
	userID := strconv.FormatInt(user.ID, 10)
	accessToken, err := token.NewAccessToken(jwt.JWTParams{
		Role:   role.DBToRole(user.Role).String(),
		UserID: userID,
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create and persist refresh token
	env.Logger.DebugContext(ctx, "generating refresh token")
	refreshToken, err := token.NewRefreshToken(userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create refresh token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	_, err = env.Database.CreateRefreshToken(ctx, database.CreateRefreshTokenParams{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(token.RefreshTokenLifetime),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to persist refresh token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "writing response")
	w.Header().Set("Content-Type", "application/json")
	resp := TokenLoginResponse{Access: accessToken, Refresh: refreshToken}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleTokenLogout godoc
//
//	@Summary		Revoke the caller's refresh tokens.
//	@Description	Any internal fault during revocation is reported as an
//	@Description	authentication failure rather than a server error.
//	@Tags			Auth
//	@Success		204
//	@Failure		401	{object}	apiError.Error
//	@Security		BearerAuth
//	@Router			/api/auth/token/logout [POST]
func HandleTokenLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	// The body may carry an explicit refresh token; revoking it alone is
	// not enough since a user can hold several, so all of the user's
	// tokens go. Faults are deliberately reported as an authentication
	// failure, matching the long-standing API contract.
	var request TokenLogoutRequest
	defer func() { _ = r.Body.Close() }()
	_ = json.NewDecoder(r.Body).Decode(&request)

	if request.RefreshToken != "" {
		if _, err := env.Database.DeleteRefreshToken(ctx, request.RefreshToken); err != nil {
			env.Logger.ErrorContext(ctx, "failed to delete refresh token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
			return
		}
	}

	if _, err := env.Database.DeleteUserRefreshTokens(ctx, userID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to revoke refresh tokens", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
