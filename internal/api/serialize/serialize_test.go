package serialize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iceadmin/foodgram/internal/database"
)

func TestNewRecipeCarriesAllFields(t *testing.T) {
	published := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	recipe := database.RecipeWithFlags{
		Recipe: database.Recipe{
			ID:          7,
			AuthorID:    42,
			Name:        "borscht",
			Text:        "simmer slowly",
			ImageURL:    "http://localhost:9000/foodgram/recipes/7.png",
			CookingTime: 90,
			PubDate:     published,
		},
		IsFavorited:      true,
		IsInShoppingCart: false,
	}
	author := NewUser(database.User{ID: 42, Username: "vasya"}, true)
	tags := []database.Tag{{ID: 1, Name: "dinner", Color: "#FF0000", Slug: "dinner"}}
	ingredients := []database.RecipeIngredientRow{
		{ID: 3, Name: "beet", MeasurementUnit: "g", Amount: 200},
	}

	view := NewRecipe(recipe, author, tags, ingredients)

	if !view.PubDate.Equal(published) {
		t.Errorf("PubDate = %v, want %v", view.PubDate, published)
	}
	if view.Author.Username != "vasya" || !view.Author.IsSubscribed {
		t.Errorf("unexpected author view: %+v", view.Author)
	}
	if len(view.Tags) != 1 || view.Tags[0].Slug != "dinner" {
		t.Errorf("unexpected tags: %+v", view.Tags)
	}
	if len(view.Ingredients) != 1 || view.Ingredients[0].Amount != 200 {
		t.Errorf("unexpected ingredients: %+v", view.Ingredients)
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshaling recipe view: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshaling recipe view: %v", err)
	}
	for _, key := range []string{
		"id", "tags", "author", "ingredients", "is_favorited",
		"is_in_shopping_cart", "name", "image", "text", "cooking_time",
		"pub_date",
	} {
		if _, ok := keys[key]; !ok {
			t.Errorf("recipe JSON missing %q key", key)
		}
	}
}
