// Package users contains handlers for the user resource.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/serialize"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/argon2id"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	fgJson "github.com/iceadmin/foodgram/internal/json"
	"github.com/iceadmin/foodgram/internal/pagination"
	"github.com/iceadmin/foodgram/internal/password"
	"github.com/iceadmin/foodgram/internal/relation"
	"github.com/iceadmin/foodgram/internal/role"
)

const uniqueViolationCode = "23505"

// recipesLimitParam caps how many recipes are nested in a subscription view.
const recipesLimitParam = "recipes_limit"

func recipesLimit(r *http.Request) int32 {
	raw := r.URL.Query().Get(recipesLimitParam)
	if raw == "" {
		return math.MaxInt32
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit < 0 {
		return math.MaxInt32
	}
	return int32(limit)
}

// userView builds the outward user representation relative to the viewer.
func userView(ctx context.Context, e *env.Env, u database.User, viewerID int64) (serialize.User, error) {
	isSubscribed := false
	if viewerID != 0 && viewerID != u.ID {
		var err error
		isSubscribed, err = e.Database.IsSubscribed(ctx, database.UserPairParams{
			UserID:         viewerID,
			SubscriptionID: u.ID,
		})
		if err != nil {
			return serialize.User{}, err
		}
	}
	return serialize.NewUser(u, isSubscribed), nil
}

/// subscriptionView builds the subscription representation of a user:
// their view plus a capped recipe list and total count.
func subscriptionView(
	ctx context.Context, e *env.Env, u database.User, viewerID int64, limit int32,
) (serialize.Subscription, error) {
	view, err := userView(ctx, e, u, viewerID)
	if err != nil {
		return serialize.Subscription{}, err
	}
	recipes, err := e.Database.ListRecipesByAuthor(ctx, database.ListRecipesByAuthorParams{
		AuthorID: u.ID,
		Limit:    limit,
	})
	if err != nil {
		return serialize.Subscription{}, err
	}
	count, err := e.Database.CountUserRecipes(ctx, u.ID)
	if err != nil {
		return serialize.Subscription{}, err
	}
	return serialize.NewSubscription(u, view.IsSubscribed, recipes, count), nil
}

func encodeJSON(w http.ResponseWriter, e *env.Env, ctx context.Context, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		e.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleListUsers godoc
//
//	@Summary	List users, paginated.
//	@Tags		Users
//	@Success	200	{object}	pagination.Page[serialize.User]
//	@Router		/api/users [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	viewerID, _ := token.UserIDFromCtx(ctx)

	params := pagination.FromRequest(r)
	rows, err := env.Database.ListUsers(ctx, database.ListUsersParams{
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountUsers(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	views := make([]serialize.User, 0, len(rows))
	for _, u := range rows {
		view, err := userView(ctx, env, u, viewerID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to build user view", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		views = append(views, view)
	}

	encodeJSON(w, env, ctx, http.StatusOK, pagination.NewPage(r, params, count, views))
}

// HandleCreateUser godoc
//
//	@Summary		Register a user.
//	@Description	Re-registration with an identical (username, email) pair is
//	@Description	a no-op success returning the existing identity.
//	@Tags			Users
//	@Accept			json
//	@Param			request	body		CreateUserRequest	true	"Create User Request"
//	@Success		200		{object}	ExistingUserResponse
//	@Success		201		{object}	serialize.User
//	@Failure		409		{object}	apiError.Error	"Status Conflict"
//	@Failure		422		{object}	apiError.Error	"Unprocessible Entity"
//	@Router			/api/users [POST]
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request CreateUserRequest
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

	// An identical (username, email) pair means the account already
	// exists; answer 200 with its identity instead of erroring.
	env.Logger.DebugContext(ctx, "checking for existing account")
	existing, err := env.Database.GetUserByUsernameEmail(ctx, database.GetUserByUsernameEmailParams{
		Username: request.Username,
		Email:    request.Email,
	})
	if err == nil {
		env.Logger.DebugContext(ctx, "account already exists", slog.Int64("user-id", existing.ID))
		encodeJSON(w, env, ctx, http.StatusOK, ExistingUserResponse{
			Email:    existing.Email,
			Username: existing.Username,
		})
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "failed to check for existing account", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Ensure password strength
	env.Logger.DebugContext(ctx, "validating password")
	if err := password.ValidatePassword(request.Password); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID) // OK to share the error with client.
		return
	}

	// Hash password
	env.Logger.DebugContext(ctx, "hashing password")
	hash, err := argon2id.EncodeHash(request.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create user
	env.Logger.DebugContext(ctx, "creating user")
	var pgErr *pgconn.PgError
	userID, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         database.RoleUser,
	})
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		env.Logger.ErrorContext(ctx, "username or email already in use", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UserConflict, "username or email already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, env, ctx, http.StatusCreated, serialize.User{
		ID:        userID,
		Username:  request.Username,
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
}

// HandleGetUser godoc
//
//	@Summary	Get a user profile.
//	@Tags		Users
//	@Success	200	{object}	serialize.User
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/users/{userID} [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	viewerID, _ := token.UserIDFromCtx(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	user, err := env.Database.GetUserByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", id))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	view, err := userView(ctx, env, user, viewerID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build user view", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	encodeJSON(w, env, ctx, http.StatusOK, view)
}

// HandleMe godoc
//
//	@Summary	Get the calling user's profile.
//	@Tags		Users
//	@Success	200	{object}	serialize.User
//	@Security	BearerAuth
//	@Router		/api/users/me [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	user, err := env.Database.GetUserByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, env, ctx, http.StatusOK, serialize.NewUser(user, false))
}

// updateUser applies an UpdateUserRequest to the target account.
// Shared by the self-service and admin update endpoints.
func updateUser(w http.ResponseWriter, r *http.Request, targetID int64) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var request UpdateUserRequest
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

	var pgErr *pgconn.PgError
	user, err := env.Database.UpdateUser(ctx, database.UpdateUserParams{
		ID:        targetID,
		Username:  request.Username,
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", targetID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		env.Logger.ErrorContext(ctx, "username or email already in use", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UserConflict, "username or email already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, env, ctx, http.StatusOK, serialize.NewUser(user, false))
}

// HandleUpdateUser godoc
//
//	@Summary	Update an account. The caller must own it or be an admin.
//	@Tags		Users
//	@Success	200	{object}	serialize.User
//	@Failure	403	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{userID} [PUT]
func HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	if !callerManages(ctx, targetID) {
		env.Logger.ErrorContext(ctx, "caller does not manage account", slog.Int64("target-id", targetID))
		_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
		return
	}

	updateUser(w, r, targetID)
}

// HandleDeleteUser godoc
//
//	@Summary	Delete an account. The caller must own it or be an admin.
//	@Tags		Users
//	@Success	204
//	@Failure	403	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{userID} [DELETE]
func HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}
	if !callerManages(ctx, targetID) {
		env.Logger.ErrorContext(ctx, "caller does not manage account", slog.Int64("target-id", targetID))
		_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
		return
	}

	deleteUser(w, r, targetID)
}

func deleteUser(w http.ResponseWriter, r *http.Request, targetID int64) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	rows, err := env.Database.DeleteUser(ctx, targetID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", targetID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// callerManages reports whether the authenticated caller may manage the
// target account: owners and admins only.
func callerManages(ctx context.Context, targetID int64) bool {
	callerID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		return false
	}
	if callerID == targetID {
		return true
	}
	return token.RoleFromCtx(ctx) >= role.RoleAdmin
}

// HandleSetPassword godoc
//
//	@Summary	Change the calling user's password.
//	@Tags		Users
//	@Success	204
//	@Failure	400	{object}	apiError.Error
//	@Failure	422	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/set_password [POST]
func HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var request SetPasswordRequest
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

	user, err := env.Database.GetUserByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	match, err := argon2id.ComparePassword(request.CurrentPassword, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to compare passwords", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.ErrorContext(ctx, "current password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "current password is incorrect", requestID)
		return
	}

	if err := password.ValidatePassword(request.NewPassword); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID)
		return
	}

	hash, err := argon2id.EncodeHash(request.NewPassword, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	err = env.Database.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleEditUser godoc
//
//	@Summary	Edit any account. Admin only.
//	@Tags		Users
//	@Success	200	{object}	serialize.User
//	@Security	BearerAuth
//	@Router		/api/users/{userID}/edit_user [PUT]
func HandleEditUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	updateUser(w, r, targetID)
}

// HandleAdminDeleteUser godoc
//
//	@Summary	Delete any account. Admin only.
//	@Tags		Users
//	@Success	204
//	@Security	BearerAuth
//	@Router		/api/users/{userID}/delete_user [DELETE]
func HandleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	deleteUser(w, r, targetID)
}

// HandleBlockUser godoc
//
//	@Summary	Block an account. Admin only.
//	@Tags		Users
//	@Success	200	{object}	DetailResponse
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{userID}/block_user [POST]
func HandleBlockUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	rows, err := env.Database.BlockUser(ctx, targetID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to block user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", targetID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	}

	// Revoke outstanding refresh tokens so the block takes effect once
	// the current access token expires.
	if _, err := env.Database.DeleteUserRefreshTokens(ctx, targetID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to revoke refresh tokens", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, env, ctx, http.StatusOK, DetailResponse{Detail: "user blocked"})
}

// HandleSubscriptions godoc
//
//	@Summary	List the accounts the caller subscribes to, paginated.
//	@Tags		Users
//	@Param		recipes_limit	query		int	false	"Cap on nested recipes per account"
//	@Success	200				{object}	pagination.Page[serialize.Subscription]
//	@Security	BearerAuth
//	@Router		/api/users/subscriptions [GET]
func HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	params := pagination.FromRequest(r)
	limit := recipesLimit(r)

	rows, err := env.Database.ListSubscriptions(ctx, database.ListSubscriptionsParams{
		UserID: userID,
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountSubscriptions(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	views := make([]serialize.Subscription, 0, len(rows))
	for _, u := range rows {
		view, err := subscriptionView(ctx, env, u, userID, limit)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to build subscription view", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		views = append(views, view)
	}

	encodeJSON(w, env, ctx, http.StatusOK, pagination.NewPage(r, params, count, views))
}

// HandleSubscribe godoc
//
//	@Summary	Subscribe to an account.
//	@Tags		Users
//	@Success	201	{object}	serialize.Subscription
//	@Failure	400	{object}	apiError.Error	"Self-subscription"
//	@Failure	404	{object}	apiError.Error
//	@Failure	409	{object}	apiError.Error	"Already subscribed"
//	@Security	BearerAuth
//	@Router		/api/users/{userID}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	if userID == targetID {
		env.Logger.ErrorContext(ctx, "self-subscription rejected")
		_ = apiError.EncodeError(w, apiError.SelfSubscription, "you cannot subscribe to yourself", requestID)
		return
	}

	target, err := env.Database.GetUserByID(ctx, targetID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", targetID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	toggle := relation.Toggle{
		Add: func(ctx context.Context) (int64, error) {
			return env.Database.AddSubscription(ctx, database.UserPairParams{
				UserID:         userID,
				SubscriptionID: targetID,
			})
		},
	}
	if err := toggle.AddMember(ctx); errors.Is(err, relation.ErrAlreadyExists) {
		env.Logger.ErrorContext(ctx, "already subscribed", slog.Int64("target-id", targetID))
		_ = apiError.EncodeError(w, apiError.AlreadyInRelation, "already subscribed to this user", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to subscribe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	view, err := subscriptionView(ctx, env, target, userID, recipesLimit(r))
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build subscription view", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	encodeJSON(w, env, ctx, http.StatusCreated, view)
}

// HandleUnsubscribe godoc
//
//	@Summary	Unsubscribe from an account.
//	@Tags		Users
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not subscribed"
//	@Failure	404	{object}	apiError.Error
//	@Security	BearerAuth
//	@Router		/api/users/{userID}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	if _, err := env.Database.GetUserByID(ctx, targetID); errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "user not found", slog.Int64("user-id", targetID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	toggle := relation.Toggle{
		Remove: func(ctx context.Context) (int64, error) {
			return env.Database.RemoveSubscription(ctx, database.UserPairParams{
				UserID:         userID,
				SubscriptionID: targetID,
			})
		},
	}
	if err := toggle.RemoveMember(ctx); errors.Is(err, relation.ErrNotFound) {
		env.Logger.ErrorContext(ctx, "not subscribed", slog.Int64("target-id", targetID))
		_ = apiError.EncodeError(w, apiError.NotInRelation, "you are not subscribed to this user", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to unsubscribe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
