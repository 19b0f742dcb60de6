package users

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

func TestHandleCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name: "new account created",
			body: `{"username":"vasya","email":"vasya@example.com","first_name":"Vasya","last_name":"Pupkin","password":"horse-battery-staple"}`,
			setup: func() {
				mockDB.EXPECT().
					GetUserByUsernameEmail(gomock.Any(), database.GetUserByUsernameEmailParams{
						Username: "vasya",
						Email:    "vasya@example.com",
					}).
					Return(database.User{}, pgx.ErrNoRows)
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "re-registration is a no-op success",
			body: `{"username":"vasya","email":"vasya@example.com","password":"horse-battery-staple"}`,
			setup: func() {
				mockDB.EXPECT().
					GetUserByUsernameEmail(gomock.Any(), gomock.Any()).
					Return(database.User{
						ID:       7,
						Username: "vasya",
						Email:    "vasya@example.com",
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "username taken with a different email",
			body: `{"username":"vasya","email":"other@example.com","password":"horse-battery-staple"}`,
			setup: func() {
				mockDB.EXPECT().
					GetUserByUsernameEmail(gomock.Any(), gomock.Any()).
					Return(database.User{}, pgx.ErrNoRows)
				mockDB.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505"})
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.UserConflict,
		},
		{
			name: "weak password rejected",
			body: `{"username":"vasya","email":"vasya@example.com","password":"aaaaaaaaaa"}`,
			setup: func() {
				mockDB.EXPECT().
					GetUserByUsernameEmail(gomock.Any(), gomock.Any()).
					Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiError.WeakPassword,
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
		{
			name:       "missing required fields",
			body:       `{"username":"vasya"}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest("POST", "/api/users/", strings.NewReader(tt.body))
			r = r.WithContext(env.WithCtx(r.Context(), e))
			rec := httptest.NewRecorder()

			HandleCreateUser(rec, r)

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

func TestHandleCreateUserReRegistrationBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetUserByUsernameEmail(gomock.Any(), gomock.Any()).
		Return(database.User{ID: 7, Username: "vasya", Email: "vasya@example.com"}, nil)

	body := `{"username":"vasya","email":"vasya@example.com","password":"whatever-it-was"}`
	r := httptest.NewRequest("POST", "/api/users/", strings.NewReader(body))
	r = r.WithContext(env.WithCtx(r.Context(), e))
	rec := httptest.NewRecorder()

	HandleCreateUser(rec, r)

	var resp ExistingUserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Username != "vasya" || resp.Email != "vasya@example.com" {
		t.Errorf("response = %+v, want the existing identity", resp)
	}
}

func TestHandleGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetUserByID(gomock.Any(), int64(7)).
		Return(database.User{ID: 7, Username: "vasya", Email: "vasya@example.com"}, nil)

	r := httptest.NewRequest("GET", "/api/users/7", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	r = withURLParam(r, "userID", "7")
	rec := httptest.NewRecorder()

	HandleGetUser(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var view serialize.User
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if view.ID != 7 || view.Username != "vasya" {
		t.Errorf("view = %+v, want user 7", view)
	}
	if view.IsSubscribed {
		t.Error("anonymous viewer should never be subscribed")
	}
}

func TestHandleGetUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	mockDB.EXPECT().
		GetUserByID(gomock.Any(), int64(999)).
		Return(database.User{}, pgx.ErrNoRows)

	r := httptest.NewRequest("GET", "/api/users/999", nil)
	r = r.WithContext(env.WithCtx(r.Context(), e))
	r = withURLParam(r, "userID", "999")
	rec := httptest.NewRecorder()

	HandleGetUser(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeError(t, rec); got.Code != apiError.UserNotFound {
		t.Errorf("error code = %q, want %q", got.Code, apiError.UserNotFound)
	}
}

func TestHandleSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockQuerier(ctrl)
	e := newTestEnv(mockDB)

	tests := []struct {
		name       string
		targetID   string
		setup      func()
		wantStatus int
		wantCode   apiError.ErrorCode
	}{
		{
			name:     "successful subscription",
			targetID: "7",
			setup: func() {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(7)).
					Return(database.User{ID: 7, Username: "author"}, nil)
				mockDB.EXPECT().
					AddSubscription(gomock.Any(), database.UserPairParams{
						UserID:         42,
						SubscriptionID: 7,
					}).
					Return(int64(1), nil)
				// Subscription view of the target.
				mockDB.EXPECT().
					IsSubscribed(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockDB.EXPECT().
					ListRecipesByAuthor(gomock.Any(), gomock.Any()).
					Return([]database.Recipe{{ID: 1, Name: "borscht"}}, nil)
				mockDB.EXPECT().
					CountUserRecipes(gomock.Any(), int64(7)).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "self-subscription rejected",
			targetID:   "42",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.SelfSubscription,
		},
		{
			name:     "target does not exist",
			targetID: "999",
			setup: func() {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(999)).
					Return(database.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiError.UserNotFound,
		},
		{
			name:     "duplicate subscription",
			targetID: "7",
			setup: func() {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(7)).
					Return(database.User{ID: 7}, nil)
				mockDB.EXPECT().
					AddSubscription(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiError.AlreadyInRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest("POST", "/api/users/"+tt.targetID+"/subscribe", nil)
			ctx := env.WithCtx(r.Context(), e)
			ctx = token.UserIDWithCtx(ctx, 42)
			r = r.WithContext(ctx)
			r = withURLParam(r, "userID", tt.targetID)
			rec := httptest.NewRecorder()

			HandleSubscribe(rec, r)

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

func TestHandleUnsubscribe(t *testing.T) {
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
			name: "successful unsubscription",
			setup: func() {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(7)).
					Return(database.User{ID: 7}, nil)
				mockDB.EXPECT().
					RemoveSubscription(gomock.Any(), database.UserPairParams{
						UserID:         42,
						SubscriptionID: 7,
					}).
					Return(int64(1), nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not subscribed is a client error",
			setup: func() {
				mockDB.EXPECT().
					GetUserByID(gomock.Any(), int64(7)).
					Return(database.User{ID: 7}, nil)
				mockDB.EXPECT().
					RemoveSubscription(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiError.NotInRelation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest("DELETE", "/api/users/7/subscribe", nil)
			ctx := env.WithCtx(r.Context(), e)
			ctx = token.UserIDWithCtx(ctx, 42)
			r = r.WithContext(ctx)
			r = withURLParam(r, "userID", "7")
			rec := httptest.NewRecorder()

			HandleUnsubscribe(rec, r)

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
