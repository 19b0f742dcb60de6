package database

import (
	"context"
	"strings"
)

const listIngredients = `
SELECT id, name, measurement_unit
FROM ingredients
WHERE $1 = '' OR name ILIKE $1 || '%'
ORDER BY name
`

// likeEscaper neutralizes LIKE metacharacters in user input so a prefix
// such as "_ол" matches literally instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListIngredients returns ingredients whose name starts with the given
// prefix, case-insensitively. An empty prefix matches everything.
func (q *Queries) ListIngredients(ctx context.Context, namePrefix string) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, listIngredients, likeEscaper.Replace(namePrefix))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Ingredient{}
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getIngredient = `
SELECT id, name, measurement_unit FROM ingredients WHERE id = $1
`

func (q *Queries) GetIngredient(ctx context.Context, id int64) (Ingredient, error) {
	row := q.db.QueryRow(ctx, getIngredient, id)
	var i Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	return i, err
}

const createIngredient = `
INSERT INTO ingredients (name, measurement_unit) VALUES ($1, $2)
RETURNING id
`

type CreateIngredientParams struct {
	Name            string
	MeasurementUnit string
}

func (q *Queries) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (int64, error) {
	row := q.db.QueryRow(ctx, createIngredient, arg.Name, arg.MeasurementUnit)
	var id int64
	err := row.Scan(&id)
	return id, err
}
