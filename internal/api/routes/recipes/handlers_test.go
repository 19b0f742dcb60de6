package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	apiError "github.com/iceadmin/foodgram/internal/api/error"
	"github.com/iceadmin/foodgram/internal/api/serialize"
	"github.com/iceadmin/foodgram/internal/api/token"
	"github.com/iceadmin/foodgram/internal/config"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	"github.com/iceadmin/foodgram/internal/log"
	"github.com/iceadmin/foodgram/internal/pagination"
)

func newTestEnv(mockDB *database.MockQuerier) *env.Env {
	return &env.Env{
		Logger:   log.NullLogger(),
		Database: &database.Database{Querier: mockDB},
		Config:   &config.Config{},
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError.Error {
	t.Helper()
	var body apiError.Error
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func TestHandleGetRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetRecipeWithFlags(gomock.Any(), database.GetRecipeWithFlagsParams{ID: 3, ViewerID: 0}).
		Return(database.RecipeWithFlags{
			Recipe: database.Recipe{
				ID:          3,
				AuthorID:    7,
				Name:        "borscht",
				Text:        "cook it",
				ImageURL:    "http://files/recipes/images/3.png",
				CookingTime: 90,
			},
		}, nil)
	mockDB.EXPECT().
		GetUserByID(gomock.Any(), int64(7)).
		Return(database.User{ID: 7, Username: "author"}, nil)
	mockDB.EXPECT().
		GetRecipeTags(gomock.Any(), int64(3)).
		Return([]database.Tag{{ID: 1, Name: "dinner", Slug: "dinner"}}, nil)
	mockDB.EXPECT().
		GetRecipeIngredients(gomock.Any(), int64(3)).
		Return([]database.RecipeIngredientRow{
			{ID: 2, Name: "beet", MeasurementUnit: "g", Amount: 300},
		}, nil)

	r := httptest.NewRequest("GET", "/api/recipes/3", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	r = withURLParam(r, "recipeID", "3")
	rec := httptest.NewRecorder()

	HandleGetRecipe(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var view serialize.Recipe
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if view.ID != 3 || view.Name != "borscht" {
		t.Errorf("view = %+v, want recipe 3", view)
	}
	if view.Author.ID != 7 {
		t.Errorf("author id = %d, want 7", view.Author.ID)
	}
	if len(view.Tags) != 1 || view.Tags[0].Slug != "dinner" {
		t.Errorf("tags = %+v, want the dinner tag", view.Tags)
	}
	if len(view.Ingredients) != 1 || view.Ingredients[0].Amount != 300 {
		t.Errorf("ingredients = %+v, want beet with amount 300", view.Ingredients)
	}
	if view.IsFavorited || view.IsInShoppingCart {
		t.Error("anonymous viewer should see both flags false")
	}
}

func TestHandleGetRecipeNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetRecipeWithFlags(gomock.Any(), gomock.Any()).
		Return(database.RecipeWithFlags{}, pgx.ErrNoRows)

	r := httptest.NewRequest("GET", "/api/recipes/999", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	r = withURLParam(r, "recipeID", "999")
	rec := httptest.NewRecorder()

	HandleGetRecipe(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeError(t, rec); got.Code != apiError.RecipeNotFound {
		t.Errorf("error code = %q, want %q", got.Code, apiError.RecipeNotFound)
	}
}

func TestHandleFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	tests := []struct {
		name       string
		setup      func()
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "added to favorites",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{ID: 3, Name: "borscht", CookingTime: 90}, nil)
				mockDB.EXPECT().
					AddFavorite(gomock.Any(), database.UserRecipeParams{UserID: 42, RecipeID: 3}).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "recipe does not exist is a plain client error",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name: "already favorited",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{ID: 3}, nil)
				mockDB.EXPECT().
					AddFavorite(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.AlreadyInRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest("POST", "/api/recipes/3/favorite", nil)
			ctx := env.WithCtx(r.Context(), e)
			ctx = token.UserIDWithCtx(ctx, 42)
			r = r.WithContext(ctx)
			r = withURLParam(r, "recipeID", "3")
			rec := httptest.NewRecorder()

			HandleFavorite(rec, r)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec); got.Code != tt.wantCode {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
				return
			}
			if tt.wantStatus == http.StatusCreated {
				var brief serialize.RecipeBrief
				if err := json.NewDecoder(rec.Body).Decode(&brief); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if brief.ID != 3 || brief.Name != "borscht" {
					t.Errorf("brief = %+v, want recipe 3", brief)
				}
			}
		})
	}
}

func TestHandleUnfavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	tests := []struct {
		name       string
		setup      func()
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "removed from favorites",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{ID: 3}, nil)
				mockDB.EXPECT().
					RemoveFavorite(gomock.Any(), database.UserRecipeParams{UserID: 42, RecipeID: 3}).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not favorited is a client error",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{ID: 3}, nil)
				mockDB.EXPECT().
					RemoveFavorite(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.NotInRelation,
		},
		{
			name: "missing recipe is not found",
			setup: func() {
				mockDB.EXPECT().
					GetRecipe(gomock.Any(), int64(3)).
					Return(database.Recipe{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.RecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest("DELETE", "/api/recipes/3/favorite", nil)
			ctx := env.WithCtx(r.Context(), e)
			ctx = token.UserIDWithCtx(ctx, 42)
			r = r.WithContext(ctx)
			r = withURLParam(r, "recipeID", "3")
			rec := httptest.NewRecorder()

			HandleUnfavorite(rec, r)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec); got.Code != tt.wantCode {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestHandleUpdateRecipeRestoresRelationsOnFailedAttach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	// The replacement ingredient does not exist, so the insert hits the
	// foreign key. The handler must put the previous ingredients back
	// before answering.
	gomock.InOrder(
		mockDB.EXPECT().
			GetRecipe(gomock.Any(), int64(3)).
			Return(database.Recipe{ID: 3, AuthorID: 42, Name: "borscht"}, nil),
		mockDB.EXPECT().
			UpdateRecipe(gomock.Any(), database.UpdateRecipeParams{
				ID:          3,
				Name:        "borscht",
				Text:        "cook it",
				CookingTime: 90,
			}).
			Return(int64(1), nil),
		mockDB.EXPECT().
			GetRecipeIngredients(gomock.Any(), int64(3)).
			Return([]database.RecipeIngredientRow{
				{ID: 2, Name: "beet", MeasurementUnit: "g", Amount: 300},
			}, nil),
		mockDB.EXPECT().
			ClearRecipeIngredients(gomock.Any(), int64(3)).
			Return(nil),
		mockDB.EXPECT().
			AddRecipeIngredient(gomock.Any(), database.AddRecipeIngredientParams{
				RecipeID:     3,
				IngredientID: 99,
				Amount:       10,
			}).
			Return(&pgconn.PgError{Code: "23503"}),
		mockDB.EXPECT().
			ClearRecipeIngredients(gomock.Any(), int64(3)).
			Return(nil),
		mockDB.EXPECT().
			AddRecipeIngredient(gomock.Any(), database.AddRecipeIngredientParams{
				RecipeID:     3,
				IngredientID: 2,
				Amount:       300,
			}).
			Return(nil),
	)

	body := `{"name":"borscht","text":"cook it","cooking_time":90,` +
		`"ingredients":[{"id":99,"amount":10}]}`
	r := httptest.NewRequest("PATCH", "/api/recipes/3", strings.NewReader(body))
	ctx := env.WithCtx(r.Context(), e)
	ctx = token.UserIDWithCtx(ctx, 42)
	r = r.WithContext(ctx)
	r = withURLParam(r, "recipeID", "3")
	rec := httptest.NewRecorder()

	HandleUpdateRecipe(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if got := decodeError(t, rec); got.Code != apiError.BadRequest {
		t.Errorf("error code = %q, want %q", got.Code, apiError.BadRequest)
	}
}

func TestHandleDownloadShoppingCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetUserByID(gomock.Any(), int64(42)).
		Return(database.User{ID: 42, Username: "vasya"}, nil)
	mockDB.EXPECT().
		AggregateGroceriesList(gomock.Any(), int64(42)).
		Return([]database.GroceriesItem{
			{Name: "beet", MeasurementUnit: "g", Total: 600},
		}, nil)

	r := httptest.NewRequest("GET", "/api/recipes/download_shopping_cart", nil)
	ctx := env.WithCtx(r.Context(), e)
	ctx = token.UserIDWithCtx(ctx, 42)
	r = r.WithContext(ctx)
	rec := httptest.NewRecorder()

	HandleDownloadShoppingCart(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "shopping_list.txt") {
		t.Errorf("Content-Disposition = %q, want the attachment filename", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "vasya") {
		t.Errorf("document %q missing username", body)
	}
	if !strings.Contains(body, "beet(g) — 600") {
		t.Errorf("document %q missing aggregated line", body)
	}
}

func TestHandleDownloadShoppingCartUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	r := httptest.NewRequest("GET", "/api/recipes/download_shopping_cart", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	rec := httptest.NewRecorder()

	HandleDownloadShoppingCart(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestListFilters(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/recipes?author=7&tags=breakfast&tags=dinner&is_favorited=1&is_in_shopping_cart=0", nil)

	got := listFilters(r, 42, pagination.Params{Page: 1, Limit: 5})

	if got.ViewerID != 42 {
		t.Errorf("ViewerID = %d, want 42", got.ViewerID)
	}
	if got.AuthorID != 7 {
		t.Errorf("AuthorID = %d, want 7", got.AuthorID)
	}
	if len(got.TagSlugs) != 2 || got.TagSlugs[0] != "breakfast" || got.TagSlugs[1] != "dinner" {
		t.Errorf("TagSlugs = %v, want [breakfast dinner]", got.TagSlugs)
	}
	if !got.OnlyFavorited {
		t.Error("OnlyFavorited = false, want true")
	}
	if got.OnlyInShoppingCart {
		t.Error("OnlyInShoppingCart = true, want false")
	}
}
