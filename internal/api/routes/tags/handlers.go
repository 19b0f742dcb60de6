// Package tags contains handlers for the tags endpoints. Reads are public;
// writes are admin-only and routed behind the admin middleware.
package tags

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/serialize"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	fgJson "github.com/iceadmin/foodgram/internal/json"
)

const uniqueViolationCode = "23505"

// HandleListTags godoc
//
//	@Summary	List all tags.
//	@Tags		Tags
//	@Success	200	{array}	serialize.Tag
//	@Router		/api/tags [GET]
func HandleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	rows, err := env.Database.ListTags(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list tags", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(serialize.NewTags(rows)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetTag godoc
//
//	@Summary	Get a single tag.
//	@Tags		Tags
//	@Success	200	{object}	serialize.Tag
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/tags/{tagID} [GET]
func HandleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid tag id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid tag id", requestID)
		return
	}

	tag, err := env.Database.GetTag(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "tag not found", slog.Int64("tag-id", id))
		_ = apiError.EncodeError(w, apiError.TagNotFound, "tag not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(serialize.NewTag(tag)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

type TagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Slug  string `json:"slug" validate:"required,max=200"`
}

// HandleCreateTag godoc
//
//	@Summary	Create a tag. Admin only.
//	@Tags		Tags
//	@Success	201	{object}	serialize.Tag
//	@Failure	409	{object}	apiError.Error
//	@Router		/api/tags [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var request TagRequest
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
	id, err := env.Database.CreateTag(ctx, database.CreateTagParams{
		Name:  request.Name,
		Color: request.Color,
		Slug:  request.Slug,
	})
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		env.Logger.ErrorContext(ctx, "tag slug already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.TagConflict, "tag slug already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := serialize.Tag{ID: id, Name: request.Name, Color: request.Color, Slug: request.Slug}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleUpdateTag godoc
//
//	@Summary	Update a tag. Admin only.
//	@Tags		Tags
//	@Success	200	{object}	serialize.Tag
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/tags/{tagID} [PUT]
func HandleUpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid tag id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid tag id", requestID)
		return
	}

	var request TagRequest
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

	rows, err := env.Database.UpdateTag(ctx, database.UpdateTagParams{
		ID:    id,
		Name:  request.Name,
		Color: request.Color,
		Slug:  request.Slug,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "tag not found", slog.Int64("tag-id", id))
		_ = apiError.EncodeError(w, apiError.TagNotFound, "tag not found", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := serialize.Tag{ID: id, Name: request.Name, Color: request.Color, Slug: request.Slug}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleDeleteTag godoc
//
//	@Summary	Delete a tag. Admin only.
//	@Tags		Tags
//	@Success	204
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/tags/{tagID} [DELETE]
func HandleDeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "tagID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid tag id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid tag id", requestID)
		return
	}

	rows, err := env.Database.DeleteTag(ctx, id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "tag not found", slog.Int64("tag-id", id))
		_ = apiError.EncodeError(w, apiError.TagNotFound, "tag not found", requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
