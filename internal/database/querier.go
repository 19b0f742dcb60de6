package database

import (
	"context"
)

// Querier is the full query surface. Handlers depend on it so that tests
// can substitute a mock (mock_querier.go).
type Querier interface {
	// Users
	CreateUser(ctx context.Context, arg CreateUserParams) (int64, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByUsernameEmail(ctx context.Context, arg GetUserByUsernameEmailParams) (User, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error)
	UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error
	BlockUser(ctx context.Context, id int64) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
	CountUserRecipes(ctx context.Context, authorID int64) (int64, error)

	// Tags
	ListTags(ctx context.Context) ([]Tag, error)
	GetTag(ctx context.Context, id int64) (Tag, error)
	CreateTag(ctx context.Context, arg CreateTagParams) (int64, error)
	UpdateTag(ctx context.Context, arg UpdateTagParams) (int64, error)
	DeleteTag(ctx context.Context, id int64) (int64, error)

	// Ingredients
	ListIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (Ingredient, error)
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (int64, error)

	// Recipes
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (int64, error)
	UpdateRecipeImage(ctx context.Context, arg UpdateRecipeImageParams) error
	DeleteRecipe(ctx context.Context, id int64) (int64, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	GetRecipeWithFlags(ctx context.Context, arg GetRecipeWithFlagsParams) (RecipeWithFlags, error)
	ListRecipes(ctx context.Context, arg ListRecipesParams) ([]RecipeWithFlags, error)
	CountRecipes(ctx context.Context, arg ListRecipesParams) (int64, error)
	ListRecipesByAuthor(ctx context.Context, arg ListRecipesByAuthorParams) ([]Recipe, error)
	GetRecipeTags(ctx context.Context, recipeID int64) ([]Tag, error)
	GetRecipeIngredients(ctx context.Context, recipeID int64) ([]RecipeIngredientRow, error)
	AddRecipeTag(ctx context.Context, arg AddRecipeTagParams) error
	ClearRecipeTags(ctx context.Context, recipeID int64) error
	AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error
	ClearRecipeIngredients(ctx context.Context, recipeID int64) error

	// Join relations
	AddFavorite(ctx context.Context, arg UserRecipeParams) (int64, error)
	RemoveFavorite(ctx context.Context, arg UserRecipeParams) (int64, error)
	AddToGroceriesList(ctx context.Context, arg UserRecipeParams) (int64, error)
	RemoveFromGroceriesList(ctx context.Context, arg UserRecipeParams) (int64, error)
	AddSubscription(ctx context.Context, arg UserPairParams) (int64, error)
	RemoveSubscription(ctx context.Context, arg UserPairParams) (int64, error)
	IsSubscribed(ctx context.Context, arg UserPairParams) (bool, error)
	ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]User, error)
	CountSubscriptions(ctx context.Context, userID int64) (int64, error)
	AggregateGroceriesList(ctx context.Context, userID int64) ([]GroceriesItem, error)

	// Refresh tokens
	CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (int64, error)
	DeleteRefreshToken(ctx context.Context, token string) (int64, error)
	DeleteUserRefreshTokens(ctx context.Context, userID int64) (int64, error)

	// Schema
	CheckUsersTableExists(ctx context.Context) (bool, error)
}

var _ Querier = (*Queries)(nil)
