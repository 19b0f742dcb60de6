package recipes

type IngredientAmountRequest struct {
	ID     int64 `json:"id" validate:"required,min=1"`
	Amount int32 `json:"amount" validate:"required,min=1"`
}

type CreateRecipeRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	Image       string                    `json:"image" validate:"required"`
	CookingTime int32                     `json:"cooking_time" validate:"required,min=1"`
	Tags        []int64                   `json:"tags" validate:"required,min=1,dive,min=1"`
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,min=1,dive"`
}

// UpdateRecipeRequest is a partial update: nil slices leave the
// corresponding relation untouched, an empty image keeps the current one.
type UpdateRecipeRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	Image       string                    `json:"image"`
	CookingTime int32                     `json:"cooking_time" validate:"required,min=1"`
	Tags        []int64                   `json:"tags" validate:"omitempty,min=1,dive,min=1"`
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"omitempty,min=1,dive"`
}
