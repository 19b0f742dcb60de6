package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	UserConflict            ErrorCode = "user_conflict"
	UserNotFound            ErrorCode = "user_not_found"
	UserBlocked             ErrorCode = "user_blocked"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	TagConflict             ErrorCode = "tag_conflict"
	AlreadyInRelation       ErrorCode = "already_in_relation"
	NotInRelation           ErrorCode = "not_in_relation"
	SelfSubscription        ErrorCode = "self_subscription"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusUnprocessableEntity,
	UserConflict:            http.StatusConflict,
	UserNotFound:            http.StatusNotFound,
	UserBlocked:             http.StatusUnauthorized,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusNotFound,
	TagConflict:             http.StatusConflict,
	AlreadyInRelation:       http.StatusConflict,

	// Removing a pair that is not in the relation is intentionally a plain
	// client error, not a 404. Clients depend on it.
	NotInRelation:    http.StatusBadRequest,
	SelfSubscription: http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
