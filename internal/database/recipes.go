package database

import (
	"context"
	"fmt"
	"strings"
)

const recipeColumns = `r.id, r.author_id, r.name, r.text, r.image_url, r.cooking_time, r.pub_date`

const recipeFlagColumns = `
EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $1) AS is_favorited,
EXISTS (SELECT 1 FROM groceries_list g WHERE g.recipe_id = r.id AND g.user_id = $1) AS is_in_shopping_cart`

const createRecipe = `
INSERT INTO recipes (author_id, name, text, image_url, cooking_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreateRecipeParams struct {
	AuthorID    int64
	Name        string
	Text        string
	ImageURL    string
	CookingTime int32
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.AuthorID, arg.Name, arg.Text, arg.ImageURL, arg.CookingTime)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateRecipe = `
UPDATE recipes
SET name = $2, text = $3, cooking_time = $4
WHERE id = $1
`

type UpdateRecipeParams struct {
	ID          int64
	Name        string
	Text        string
	CookingTime int32
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateRecipe, arg.ID, arg.Name, arg.Text, arg.CookingTime)
	return tag.RowsAffected(), err
}

const updateRecipeImage = `
UPDATE recipes SET image_url = $2 WHERE id = $1
`

type UpdateRecipeImageParams struct {
	ID       int64
	ImageURL string
}

func (q *Queries) UpdateRecipeImage(ctx context.Context, arg UpdateRecipeImageParams) error {
	_, err := q.db.Exec(ctx, updateRecipeImage, arg.ID, arg.ImageURL)
	return err
}

const deleteRecipe = `
DELETE FROM recipes WHERE id = $1
`

func (q *Queries) DeleteRecipe(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteRecipe, id)
	return tag.RowsAffected(), err
}

const getRecipe = `
SELECT id, author_id, name, text, image_url, cooking_time, pub_date
FROM recipes
WHERE id = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipe, id)
	var r Recipe
	err := row.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Text,
		&r.ImageURL, &r.CookingTime, &r.PubDate)
	return r, err
}

type GetRecipeWithFlagsParams struct {
	ID int64
	// ViewerID is the requesting user; 0 for anonymous, in which case
	// both flags come back false.
	ViewerID int64
}

func (q *Queries) GetRecipeWithFlags(ctx context.Context, arg GetRecipeWithFlagsParams) (RecipeWithFlags, error) {
	query := `SELECT ` + recipeColumns + `,` + recipeFlagColumns + `
FROM recipes r
WHERE r.id = $2`
	row := q.db.QueryRow(ctx, query, arg.ViewerID, arg.ID)
	var r RecipeWithFlags
	err := row.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Text, &r.ImageURL,
		&r.CookingTime, &r.PubDate, &r.IsFavorited, &r.IsInShoppingCart)
	return r, err
}

type ListRecipesParams struct {
	ViewerID int64
	// AuthorID filters by author when non-zero.
	AuthorID int64
	// TagSlugs filters to recipes carrying at least one of the slugs.
	TagSlugs           []string
	OnlyFavorited      bool
	OnlyInShoppingCart bool
	Limit              int32
	Offset             int32
}

// recipeFilterClauses renders the WHERE conditions shared by
// ListRecipes and CountRecipes. $1 is always the viewer id.
func recipeFilterClauses(arg ListRecipesParams) (string, []any) {
	args := []any{arg.ViewerID}
	conds := []string{}

	if arg.AuthorID != 0 {
		args = append(args, arg.AuthorID)
		conds = append(conds, fmt.Sprintf("r.author_id = $%d", len(args)))
	}
	if len(arg.TagSlugs) > 0 {
		args = append(args, arg.TagSlugs)
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM recipes_tags rt
JOIN tags t ON t.id = rt.tag_id
WHERE rt.recipe_id = r.id AND t.slug = ANY($%d))`, len(args)))
	}
	if arg.OnlyFavorited {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $1)")
	}
	if arg.OnlyInShoppingCart {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM groceries_list g WHERE g.recipe_id = r.id AND g.user_id = $1)")
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, "\nAND "), args
}

func (q *Queries) ListRecipes(ctx context.Context, arg ListRecipesParams) ([]RecipeWithFlags, error) {
	where, args := recipeFilterClauses(arg)
	args = append(args, arg.Limit, arg.Offset)
	query := fmt.Sprintf(`SELECT `+recipeColumns+`,`+recipeFlagColumns+`
FROM recipes r
%s
ORDER BY r.pub_date DESC, r.id DESC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecipeWithFlags{}
	for rows.Next() {
		var r RecipeWithFlags
		if err := rows.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Text, &r.ImageURL,
			&r.CookingTime, &r.PubDate, &r.IsFavorited, &r.IsInShoppingCart); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (q *Queries) CountRecipes(ctx context.Context, arg ListRecipesParams) (int64, error) {
	where, args := recipeFilterClauses(arg)
	query := fmt.Sprintf("SELECT count(*) FROM recipes r\n%s", where)
	row := q.db.QueryRow(ctx, query, args...)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listRecipesByAuthor = `
SELECT id, author_id, name, text, image_url, cooking_time, pub_date
FROM recipes
WHERE author_id = $1
ORDER BY pub_date DESC, id DESC
LIMIT $2
`

type ListRecipesByAuthorParams struct {
	AuthorID int64
	Limit    int32
}

func (q *Queries) ListRecipesByAuthor(ctx context.Context, arg ListRecipesByAuthorParams) ([]Recipe, error) {
	rows, err := q.db.Query(ctx, listRecipesByAuthor, arg.AuthorID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Recipe{}
	for rows.Next() {
		var r Recipe
		if err := rows.Scan(&r.ID, &r.AuthorID, &r.Name, &r.Text,
			&r.ImageURL, &r.CookingTime, &r.PubDate); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getRecipeTags = `
SELECT t.id, t.name, t.color, t.slug
FROM tags t
JOIN recipes_tags rt ON rt.tag_id = t.id
WHERE rt.recipe_id = $1
ORDER BY t.id
`

func (q *Queries) GetRecipeTags(ctx context.Context, recipeID int64) ([]Tag, error) {
	rows, err := q.db.Query(ctx, getRecipeTags, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const getRecipeIngredients = `
SELECT i.id, i.name, i.measurement_unit, ri.amount
FROM ingredients i
JOIN recipes_ingredients ri ON ri.ingredient_id = i.id
WHERE ri.recipe_id = $1
ORDER BY i.id
`

func (q *Queries) GetRecipeIngredients(ctx context.Context, recipeID int64) ([]RecipeIngredientRow, error) {
	rows, err := q.db.Query(ctx, getRecipeIngredients, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RecipeIngredientRow{}
	for rows.Next() {
		var i RecipeIngredientRow
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const addRecipeTag = `
INSERT INTO recipes_tags (recipe_id, tag_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type AddRecipeTagParams struct {
	RecipeID int64
	TagID    int64
}

func (q *Queries) AddRecipeTag(ctx context.Context, arg AddRecipeTagParams) error {
	_, err := q.db.Exec(ctx, addRecipeTag, arg.RecipeID, arg.TagID)
	return err
}

const clearRecipeTags = `
DELETE FROM recipes_tags WHERE recipe_id = $1
`

func (q *Queries) ClearRecipeTags(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, clearRecipeTags, recipeID)
	return err
}

const addRecipeIngredient = `
INSERT INTO recipes_ingredients (recipe_id, ingredient_id, amount)
VALUES ($1, $2, $3)
`

type AddRecipeIngredientParams struct {
	RecipeID     int64
	IngredientID int64
	Amount       int32
}

func (q *Queries) AddRecipeIngredient(ctx context.Context, arg AddRecipeIngredientParams) error {
	_, err := q.db.Exec(ctx, addRecipeIngredient, arg.RecipeID, arg.IngredientID, arg.Amount)
	return err
}

const clearRecipeIngredients = `
DELETE FROM recipes_ingredients WHERE recipe_id = $1
`

func (q *Queries) ClearRecipeIngredients(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, clearRecipeIngredients, recipeID)
	return err
}
