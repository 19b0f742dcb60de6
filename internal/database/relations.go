package database

import "context"

// The add queries rely on ON CONFLICT DO NOTHING so that two concurrent
// identical requests cannot both insert; the caller checks the affected
// row count to distinguish a fresh insert from an existing pair.

const addFavorite = `
INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type UserRecipeParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) AddFavorite(ctx context.Context, arg UserRecipeParams) (int64, error) {
	tag, err := q.db.Exec(ctx, addFavorite, arg.UserID, arg.RecipeID)
	return tag.RowsAffected(), err
}

const removeFavorite = `
DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) RemoveFavorite(ctx context.Context, arg UserRecipeParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeFavorite, arg.UserID, arg.RecipeID)
	return tag.RowsAffected(), err
}

const addToGroceriesList = `
INSERT INTO groceries_list (user_id, recipe_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) AddToGroceriesList(ctx context.Context, arg UserRecipeParams) (int64, error) {
	tag, err := q.db.Exec(ctx, addToGroceriesList, arg.UserID, arg.RecipeID)
	return tag.RowsAffected(), err
}

const removeFromGroceriesList = `
DELETE FROM groceries_list WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) RemoveFromGroceriesList(ctx context.Context, arg UserRecipeParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeFromGroceriesList, arg.UserID, arg.RecipeID)
	return tag.RowsAffected(), err
}

const addSubscription = `
INSERT INTO subscriptions (user_id, subscription_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type UserPairParams struct {
	UserID         int64
	SubscriptionID int64
}

func (q *Queries) AddSubscription(ctx context.Context, arg UserPairParams) (int64, error) {
	tag, err := q.db.Exec(ctx, addSubscription, arg.UserID, arg.SubscriptionID)
	return tag.RowsAffected(), err
}

const removeSubscription = `
DELETE FROM subscriptions WHERE user_id = $1 AND subscription_id = $2
`

func (q *Queries) RemoveSubscription(ctx context.Context, arg UserPairParams) (int64, error) {
	tag, err := q.db.Exec(ctx, removeSubscription, arg.UserID, arg.SubscriptionID)
	return tag.RowsAffected(), err
}

const isSubscribed = `
SELECT EXISTS (
	SELECT 1 FROM subscriptions WHERE user_id = $1 AND subscription_id = $2
)
`

func (q *Queries) IsSubscribed(ctx context.Context, arg UserPairParams) (bool, error) {
	row := q.db.QueryRow(ctx, isSubscribed, arg.UserID, arg.SubscriptionID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listSubscriptions = `
SELECT u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.is_active, u.created_at
FROM users u
JOIN subscriptions s ON s.subscription_id = u.id
WHERE s.user_id = $1
ORDER BY u.id
LIMIT $2 OFFSET $3
`

type ListSubscriptionsParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

func (q *Queries) ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]User, error) {
	rows, err := q.db.Query(ctx, listSubscriptions, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const countSubscriptions = `
SELECT count(*) FROM subscriptions WHERE user_id = $1
`

func (q *Queries) CountSubscriptions(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countSubscriptions, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const aggregateGroceriesList = `
SELECT i.name, i.measurement_unit, COALESCE(SUM(ri.amount), 0) AS total
FROM recipes_ingredients ri
JOIN ingredients i ON i.id = ri.ingredient_id
JOIN groceries_list g ON g.recipe_id = ri.recipe_id
WHERE g.user_id = $1
GROUP BY i.name, i.measurement_unit
ORDER BY i.name, i.measurement_unit
`

// AggregateGroceriesList sums ingredient amounts over every recipe in the
// user's shopping cart, grouped by (name, measurement unit).
func (q *Queries) AggregateGroceriesList(ctx context.Context, userID int64) ([]GroceriesItem, error) {
	rows, err := q.db.Query(ctx, aggregateGroceriesList, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []GroceriesItem{}
	for rows.Next() {
		var g GroceriesItem
		if err := rows.Scan(&g.Name, &g.MeasurementUnit, &g.Total); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}
