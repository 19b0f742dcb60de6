// Package ingredients contains handlers for the ingredients endpoints.
package ingredients

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/serialize"
	"github.com/iceadmin/foodgram/internal/env"
)

// HandleListIngredients godoc
//
//	@Summary	List ingredients, optionally filtered by a name prefix.
//	@Tags		Ingredients
//	@Param		name	query		string	false	"Case-insensitive name prefix"
//	@Success	200		{array}		serialize.Ingredient
//	@Router		/api/ingredients [GET]
func HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	namePrefix := r.URL.Query().Get("name")

	env.Logger.DebugContext(ctx, "listing ingredients", slog.String("prefix", namePrefix))
	rows, err := env.Database.ListIngredients(ctx, namePrefix)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	items := make([]serialize.Ingredient, 0, len(rows))
	for _, row := range rows {
		items = append(items, serialize.NewIngredient(row))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetIngredient godoc
//
//	@Summary	Get a single ingredient.
//	@Tags		Ingredients
//	@Success	200	{object}	serialize.Ingredient
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/ingredients/{ingredientID} [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "ingredientID"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid ingredient id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid ingredient id", requestID)
		return
	}

	ingredient, err := env.Database.GetIngredient(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "ingredient not found", slog.Int64("ingredient-id", id))
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, "ingredient not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(serialize.NewIngredient(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
