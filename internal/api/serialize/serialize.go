// Package serialize maps database entities to their outward
// representations. Password hashes never leave this package.
package serialize

import (
	"time"

	"github.com/iceadmin/foodgram/internal/database"
)

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func NewUser(u database.User, isSubscribed bool) User {
	return User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func NewTag(t database.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func NewTags(tags []database.Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, NewTag(t))
	}
	return out
}

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func NewIngredient(i database.Ingredient) Ingredient {
	return Ingredient{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

// IngredientAmount is an ingredient nested in a recipe, with its amount.
type IngredientAmount struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

func NewIngredientAmounts(rows []database.RecipeIngredientRow) []IngredientAmount {
	out := make([]IngredientAmount, 0, len(rows))
	for _, row := range rows {
		out = append(out, IngredientAmount{
			ID:              row.ID,
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}
	return out
}

// RecipeBrief is the minimal recipe representation used in nested lists.
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

func NewRecipeBrief(r database.Recipe) RecipeBrief {
	return RecipeBrief{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.ImageURL,
		CookingTime: r.CookingTime,
	}
}

func NewRecipeBriefs(recipes []database.Recipe) []RecipeBrief {
	out := make([]RecipeBrief, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeBrief(r))
	}
	return out
}

// Recipe is the full representation returned by the recipe endpoints.
type Recipe struct {
	ID               int64              `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           User               `json:"author"`
	Ingredients      []IngredientAmount `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int32              `json:"cooking_time"`
	PubDate          time.Time          `json:"pub_date"`
}

func NewRecipe(
	r database.RecipeWithFlags,
	author User,
	tags []database.Tag,
	ingredients []database.RecipeIngredientRow,
) Recipe {
	return Recipe{
		ID:               r.ID,
		Tags:             NewTags(tags),
		Author:           author,
		Ingredients:      NewIngredientAmounts(ingredients),
		IsFavorited:      r.IsFavorited,
		IsInShoppingCart: r.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.ImageURL,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		PubDate:          r.PubDate,
	}
}

// Subscription is the subscription view of a user: the user plus a capped
// list of their recipes and a total recipe count.
type Subscription struct {
	User
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

func NewSubscription(u database.User, isSubscribed bool, recipes []database.Recipe, count int64) Subscription {
	return Subscription{
		User:         NewUser(u, isSubscribed),
		Recipes:      NewRecipeBriefs(recipes),
		RecipesCount: count,
	}
}
