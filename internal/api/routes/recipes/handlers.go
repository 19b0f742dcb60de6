// Package recipes contains handlers for the recipe resource and the
// per-user relations hanging off it (favorites, shopping cart).
package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/requestid"
	"github.com/iceadmin/foodgram/internal/api/serialize"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	"github.com/iceadmin/foodgram/internal/form"
	fgJson "github.com/iceadmin/foodgram/internal/json"
	"github.com/iceadmin/foodgram/internal/pagination"
	"github.com/iceadmin/foodgram/internal/relation"
	"github.com/iceadmin/foodgram/internal/role"
	"github.com/iceadmin/foodgram/internal/shoppinglist"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func encodeJSON(w http.ResponseWriter, e *env.Env, ctx context.Context, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		e.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

func recipeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
}

// callerManagesRecipe reports whether the given user may modify the
// recipe: its author, or any admin.
func callerManagesRecipe(ctx context.Context, userID, authorID int64) bool {
	return userID == authorID || token.RoleFromCtx(ctx) >= role.RoleAdmin
}

// recipeView assembles the full outward representation of a recipe:
// tags, author relative to the viewer, and ingredients with amounts.
func recipeView(
	ctx context.Context, e *env.Env, rec database.RecipeWithFlags, viewerID int64,
) (serialize.Recipe, error) {
	author, err := e.Database.GetUserByID(ctx, rec.AuthorID)
	if err != nil {
		return serialize.Recipe{}, err
	}
	isSubscribed := false
	if viewerID != 0 && viewerID != author.ID {
		isSubscribed, err = e.Database.IsSubscribed(ctx, database.UserPairParams{
			UserID:         viewerID,
			SubscriptionID: author.ID,
		})
		if err != nil {
			return serialize.Recipe{}, err
		}
	}
	tags, err := e.Database.GetRecipeTags(ctx, rec.ID)
	if err != nil {
		return serialize.Recipe{}, err
	}
	ingredients, err := e.Database.GetRecipeIngredients(ctx, rec.ID)
	if err != nil {
		return serialize.Recipe{}, err
	}
	return serialize.NewRecipe(rec, serialize.NewUser(author, isSubscribed), tags, ingredients), nil
}

// listFilters reads the recipe list filters off the query string. The
// boolean filters follow the "1" convention and bind to the viewer, so
// they match nothing for anonymous callers.
func listFilters(r *http.Request, viewerID int64, p pagination.Params) database.ListRecipesParams {
	q := r.URL.Query()
	authorID, _ := strconv.ParseInt(q.Get("author"), 10, 64)
	return database.ListRecipesParams{
		ViewerID:           viewerID,
		AuthorID:           authorID,
		TagSlugs:           q["tags"],
		OnlyFavorited:      q.Get("is_favorited") == "1",
		OnlyInShoppingCart: q.Get("is_in_shopping_cart") == "1",
		Limit:              p.Limit,
		Offset:             p.Offset(),
	}
}

// HandleListRecipes godoc
//
//	@Summary		List recipes, newest first, paginated.
//	@Description	Filterable by author, tag slugs (repeatable), and the
//	@Description	caller's favorite and shopping-cart membership.
//	@Tags			Recipes
//	@Param			author				query		int		false	"Author ID"
//	@Param			tags				query		string	false	"Tag slug"
//	@Param			is_favorited		query		int		false	"1 to keep only favorites"
//	@Param			is_in_shopping_cart	query		int		false	"1 to keep only cart members"
//	@Success		200					{object}	pagination.Page[serialize.Recipe]
//	@Router			/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	viewerID, _ := token.UserIDFromCtx(ctx)

	params := pagination.FromRequest(r)
	filters := listFilters(r, viewerID, params)

	rows, err := env.Database.ListRecipes(ctx, filters)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	count, err := env.Database.CountRecipes(ctx, filters)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to count recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	views := make([]serialize.Recipe, 0, len(rows))
	for _, rec := range rows {
		view, err := recipeView(ctx, env, rec, viewerID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to build recipe view", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		views = append(views, view)
	}

	encodeJSON(w, env, ctx, http.StatusOK, pagination.NewPage(r, params, count, views))
}

// HandleGetRecipe godoc
//
//	@Summary	Get a single recipe.
//	@Tags		Recipes
//	@Success	200	{object}	serialize.Recipe
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	viewerID, _ := token.UserIDFromCtx(ctx)

	id, err := recipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	rec, err := env.Database.GetRecipeWithFlags(ctx, database.GetRecipeWithFlagsParams{
		ID:       id,
		ViewerID: viewerID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	view, err := recipeView(ctx, env, rec, viewerID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build recipe view", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	encodeJSON(w, env, ctx, http.StatusOK, view)
}

// attachTagsAndIngredients links the given tags and ingredients to a
// recipe. A foreign-key violation means the request referenced an
// unknown id, a unique violation a duplicate; both are client errors.
func attachTagsAndIngredients(
	ctx context.Context, e *env.Env, id int64,
	tags []int64, ingredients []IngredientAmountRequest,
) (clientMessage string, err error) {
	for _, tagID := range tags {
		err = e.Database.AddRecipeTag(ctx, database.AddRecipeTagParams{
			RecipeID: id,
			TagID:    tagID,
		})
		if err != nil {
			return "unknown tag", err
		}
	}
	for _, ing := range ingredients {
		err = e.Database.AddRecipeIngredient(ctx, database.AddRecipeIngredientParams{
			RecipeID:     id,
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
		if err != nil {
			return "unknown or duplicate ingredient", err
		}
	}
	return "", nil
}

func isIntegrityError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		(pgErr.Code == foreignKeyViolationCode || pgErr.Code == uniqueViolationCode)
}

// HandleCreateRecipe godoc
//
//	@Summary	Publish a recipe.
//	@Tags		Recipes
//	@Accept		json
//	@Param		request	body		CreateRecipeRequest	true	"Create Recipe Request"
//	@Success	201		{object}	serialize.Recipe
//	@Failure	400		{object}	apiError.Error
//	@Router		/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	// Decode JSON
	var request CreateRecipeRequest
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

	// Decode image before touching the database
	env.Logger.DebugContext(ctx, "decoding recipe image")
	file, err := form.DecodeBase64Image(request.Image)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode recipe image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe image", requestID)
		return
	}

	// Create recipe row
	env.Logger.DebugContext(ctx, "creating recipe")
	id, err := env.Database.CreateRecipe(ctx, database.CreateRecipeParams{
		AuthorID:    userID,
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// discardRecipe undoes the insert when a later step fails; the
	// cascade takes the join rows with it.
	discardRecipe := func() {
		if _, err := env.Database.DeleteRecipe(ctx, id); err != nil {
			env.Logger.ErrorContext(ctx, "failed to discard incomplete recipe",
				slog.Int64("recipe-id", id), slog.Any("error", err))
		}
	}

	env.Logger.DebugContext(ctx, "attaching tags and ingredients", slog.Int64("recipe-id", id))
	message, err := attachTagsAndIngredients(ctx, env, id, request.Tags, request.Ingredients)
	if isIntegrityError(err) {
		env.Logger.ErrorContext(ctx, "recipe references invalid rows", slog.Any("error", err))
		discardRecipe()
		_ = apiError.EncodeError(w, apiError.BadRequest, message, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to attach tags and ingredients", slog.Any("error", err))
		discardRecipe()
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Store the image and record its URL
	env.Logger.DebugContext(ctx, "writing recipe image", slog.Int64("recipe-id", id))
	imageURL, err := env.FileStore.WriteRecipeImage(ctx, id, file.Suffix, file.MimeType, file.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write recipe image", slog.Any("error", err))
		discardRecipe()
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	err = env.Database.UpdateRecipeImage(ctx, database.UpdateRecipeImageParams{
		ID:       id,
		ImageURL: imageURL,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to record recipe image url", slog.Any("error", err))
		discardRecipe()
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	rec, err := env.Database.GetRecipeWithFlags(ctx, database.GetRecipeWithFlagsParams{
		ID:       id,
		ViewerID: userID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to reload recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	view, err := recipeView(ctx, env, rec, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build recipe view", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	encodeJSON(w, env, ctx, http.StatusCreated, view)
}

// HandleUpdateRecipe godoc
//
//	@Summary	Update a recipe. Author or admin only.
//	@Tags		Recipes
//	@Accept		json
//	@Param		request	body		UpdateRecipeRequest	true	"Update Recipe Request"
//	@Success	200		{object}	serialize.Recipe
//	@Failure	403		{object}	apiError.Error
//	@Failure	404		{object}	apiError.Error
//	@Router		/api/recipes/{recipeID} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	existing, err := env.Database.GetRecipe(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !callerManagesRecipe(ctx, userID, existing.AuthorID) {
		env.Logger.ErrorContext(ctx, "recipe not owned by caller",
			slog.Int64("recipe-id", id), slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe belongs to another user", requestID)
		return
	}

	// Decode JSON
	var request UpdateRecipeRequest
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

	var file *form.File
	if request.Image != "" {
		file, err = form.DecodeBase64Image(request.Image)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to decode recipe image", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe image", requestID)
			return
		}
	}

	env.Logger.DebugContext(ctx, "updating recipe", slog.Int64("recipe-id", id))
	_, err = env.Database.UpdateRecipe(ctx, database.UpdateRecipeParams{
		ID:          id,
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Snapshot the relations being replaced so a failed attach can put
	// them back instead of leaving the recipe stripped.
	var prevTags []database.Tag
	if request.Tags != nil {
		prevTags, err = env.Database.GetRecipeTags(ctx, id)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to read recipe tags", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if err := env.Database.ClearRecipeTags(ctx, id); err != nil {
			env.Logger.ErrorContext(ctx, "failed to clear recipe tags", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}
	var prevIngredients []database.RecipeIngredientRow
	if request.Ingredients != nil {
		prevIngredients, err = env.Database.GetRecipeIngredients(ctx, id)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to read recipe ingredients", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if err := env.Database.ClearRecipeIngredients(ctx, id); err != nil {
			env.Logger.ErrorContext(ctx, "failed to clear recipe ingredients", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}

	// restoreRelations undoes the clears after a failed attach. The attach
	// may have inserted some rows before failing, so each relation is
	// cleared again before its snapshot goes back in.
	restoreRelations := func() {
		if request.Tags != nil {
			if err := env.Database.ClearRecipeTags(ctx, id); err != nil {
				env.Logger.ErrorContext(ctx, "failed to restore recipe tags",
					slog.Int64("recipe-id", id), slog.Any("error", err))
				return
			}
			for _, t := range prevTags {
				err := env.Database.AddRecipeTag(ctx, database.AddRecipeTagParams{
					RecipeID: id,
					TagID:    t.ID,
				})
				if err != nil {
					env.Logger.ErrorContext(ctx, "failed to restore recipe tags",
						slog.Int64("recipe-id", id), slog.Any("error", err))
					return
				}
			}
		}
		if request.Ingredients != nil {
			if err := env.Database.ClearRecipeIngredients(ctx, id); err != nil {
				env.Logger.ErrorContext(ctx, "failed to restore recipe ingredients",
					slog.Int64("recipe-id", id), slog.Any("error", err))
				return
			}
			for _, ing := range prevIngredients {
				err := env.Database.AddRecipeIngredient(ctx, database.AddRecipeIngredientParams{
					RecipeID:     id,
					IngredientID: ing.ID,
					Amount:       ing.Amount,
				})
				if err != nil {
					env.Logger.ErrorContext(ctx, "failed to restore recipe ingredients",
						slog.Int64("recipe-id", id), slog.Any("error", err))
					return
				}
			}
		}
	}

	message, err := attachTagsAndIngredients(ctx, env, id, request.Tags, request.Ingredients)
	if isIntegrityError(err) {
		env.Logger.ErrorContext(ctx, "recipe references invalid rows", slog.Any("error", err))
		restoreRelations()
		_ = apiError.EncodeError(w, apiError.BadRequest, message, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to attach tags and ingredients", slog.Any("error", err))
		restoreRelations()
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if file != nil {
		env.Logger.DebugContext(ctx, "replacing recipe image", slog.Int64("recipe-id", id))
		imageURL, err := env.FileStore.WriteRecipeImage(ctx, id, file.Suffix, file.MimeType, file.Data)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to write recipe image", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		err = env.Database.UpdateRecipeImage(ctx, database.UpdateRecipeImageParams{
			ID:       id,
			ImageURL: imageURL,
		})
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to record recipe image url", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		// Remove the replaced object; the recipe already points at the new one.
		if existing.ImageURL != "" && existing.ImageURL != imageURL {
			if err := env.FileStore.DeleteRecipeImage(ctx, existing.ImageURL); err != nil {
				env.Logger.ErrorContext(ctx, "failed to delete replaced recipe image",
					slog.Any("error", err))
			}
		}
	}

	rec, err := env.Database.GetRecipeWithFlags(ctx, database.GetRecipeWithFlagsParams{
		ID:       id,
		ViewerID: userID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to reload recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	view, err := recipeView(ctx, env, rec, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build recipe view", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	encodeJSON(w, env, ctx, http.StatusOK, view)
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe. Author or admin only.
//	@Tags		Recipes
//	@Success	204
//	@Failure	403	{object}	apiError.Error
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	existing, err := env.Database.GetRecipe(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !callerManagesRecipe(ctx, userID, existing.AuthorID) {
		env.Logger.ErrorContext(ctx, "recipe not owned by caller",
			slog.Int64("recipe-id", id), slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe belongs to another user", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "deleting recipe", slog.Int64("recipe-id", id))
	if _, err := env.Database.DeleteRecipe(ctx, id); err != nil {
		env.Logger.ErrorContext(ctx, "failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	// The row is gone; losing the orphaned object is acceptable.
	if existing.ImageURL != "" {
		if err := env.FileStore.DeleteRecipeImage(ctx, existing.ImageURL); err != nil {
			env.Logger.ErrorContext(ctx, "failed to delete recipe image", slog.Any("error", err))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleRelationAdd implements the shared POST half of the favorite and
// shopping-cart endpoints. Referencing a recipe that does not exist is a
// plain client error, not a 404; adding one already present is a conflict.
func handleRelationAdd(w http.ResponseWriter, r *http.Request, name string,
	add func(ctx context.Context, arg database.UserRecipeParams) (int64, error),
) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	rec, err := env.Database.GetRecipe(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.BadRequest, "recipe does not exist", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	pair := database.UserRecipeParams{UserID: userID, RecipeID: id}
	toggle := relation.Toggle{
		Add: func(ctx context.Context) (int64, error) { return add(ctx, pair) },
	}
	err = toggle.AddMember(ctx)
	if errors.Is(err, relation.ErrAlreadyExists) {
		env.Logger.ErrorContext(ctx, "recipe already in "+name, slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.AlreadyInRelation, "recipe already in "+name, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to add recipe to "+name, slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	encodeJSON(w, env, ctx, http.StatusCreated, serialize.NewRecipeBrief(rec))
}

// handleRelationRemove implements the shared DELETE half. Removing a pair
// that is not in the relation is a plain client error.
func handleRelationRemove(w http.ResponseWriter, r *http.Request, name string,
	remove func(ctx context.Context, arg database.UserRecipeParams) (int64, error),
) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "invalid recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	_, err = env.Database.GetRecipe(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "recipe not found", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	pair := database.UserRecipeParams{UserID: userID, RecipeID: id}
	toggle := relation.Toggle{
		Remove: func(ctx context.Context) (int64, error) { return remove(ctx, pair) },
	}
	err = toggle.RemoveMember(ctx)
	if errors.Is(err, relation.ErrNotFound) {
		env.Logger.ErrorContext(ctx, "recipe not in "+name, slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.NotInRelation, "recipe not in "+name, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to remove recipe from "+name, slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFavorite godoc
//
//	@Summary	Add a recipe to the caller's favorites.
//	@Tags		Recipes
//	@Success	201	{object}	serialize.RecipeBrief
//	@Failure	400	{object}	apiError.Error
//	@Failure	409	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID}/favorite [POST]
func HandleFavorite(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRelationAdd(w, r, "favorites", env.Database.AddFavorite)
}

// HandleUnfavorite godoc
//
//	@Summary	Remove a recipe from the caller's favorites.
//	@Tags		Recipes
//	@Success	204
//	@Failure	400	{object}	apiError.Error
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID}/favorite [DELETE]
func HandleUnfavorite(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRelationRemove(w, r, "favorites", env.Database.RemoveFavorite)
}

// HandleAddToShoppingCart godoc
//
//	@Summary	Add a recipe to the caller's shopping cart.
//	@Tags		Recipes
//	@Success	201	{object}	serialize.RecipeBrief
//	@Failure	400	{object}	apiError.Error
//	@Failure	409	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID}/shopping_cart [POST]
func HandleAddToShoppingCart(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRelationAdd(w, r, "shopping cart", env.Database.AddToGroceriesList)
}

// HandleRemoveFromShoppingCart godoc
//
//	@Summary	Remove a recipe from the caller's shopping cart.
//	@Tags		Recipes
//	@Success	204
//	@Failure	400	{object}	apiError.Error
//	@Failure	404	{object}	apiError.Error
//	@Router		/api/recipes/{recipeID}/shopping_cart [DELETE]
func HandleRemoveFromShoppingCart(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	handleRelationRemove(w, r, "shopping cart", env.Database.RemoveFromGroceriesList)
}

// HandleDownloadShoppingCart godoc
//
//	@Summary	Export the shopping cart as a plain-text document.
//	@Description	Ingredients are summed across the recipes in the cart and
//	@Description	grouped by name and measurement unit.
//	@Tags		Recipes
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "no user id in context", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "credentials were not provided", requestID)
		return
	}

	user, err := env.Database.GetUserByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	items, err := env.Database.AggregateGroceriesList(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to aggregate shopping cart", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	document := shoppinglist.Render(user.Username, time.Now(), items)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+shoppinglist.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write shopping list", slog.Any("error", err))
	}
}
