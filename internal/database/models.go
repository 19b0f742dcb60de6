package database

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

type Tag struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

type Recipe struct {
	ID          int64
	AuthorID    int64
	Name        string
	Text        string
	ImageURL    string
	CookingTime int32
	PubDate     time.Time
}

// RecipeWithFlags is a recipe row annotated with the two
// viewer-relative booleans.
type RecipeWithFlags struct {
	Recipe
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeIngredientRow is an ingredient joined with its amount in a recipe.
type RecipeIngredientRow struct {
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int32
}

// GroceriesItem is one aggregated shopping-list group.
type GroceriesItem struct {
	Name            string
	MeasurementUnit string
	Total           int64
}
