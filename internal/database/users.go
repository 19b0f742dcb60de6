package database

import (
	"context"
)

const createUser = `
INSERT INTO users (username, email, password_hash, first_name, last_name, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Username, arg.Email, arg.PasswordHash, arg.FirstName, arg.LastName, arg.Role)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getUserByID = `
SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

const getUserByEmail = `
SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

const getUserByUsernameEmail = `
SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
FROM users
WHERE username = $1 AND email = $2
`

type GetUserByUsernameEmailParams struct {
	Username string
	Email    string
}

// GetUserByUsernameEmail looks up the account matching the exact
// (username, email) pair. Registration uses it to treat an identical
// re-registration as a no-op.
func (q *Queries) GetUserByUsernameEmail(ctx context.Context, arg GetUserByUsernameEmailParams) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUsernameEmail, arg.Username, arg.Email)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

const listUsers = `
SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
FROM users
ORDER BY id
LIMIT $1 OFFSET $2
`

type ListUsersParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers, arg.Limit, arg.Offset)
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

const countUsers = `
SELECT count(*) FROM users
`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateUser = `
UPDATE users
SET username = $2, email = $3, first_name = $4, last_name = $5
WHERE id = $1
RETURNING id, username, email, password_hash, first_name, last_name, role, is_active, created_at
`

type UpdateUserParams struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser,
		arg.ID, arg.Username, arg.Email, arg.FirstName, arg.LastName)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

const updateUserPassword = `
UPDATE users SET password_hash = $2 WHERE id = $1
`

type UpdateUserPasswordParams struct {
	ID           int64
	PasswordHash string
}

func (q *Queries) UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error {
	_, err := q.db.Exec(ctx, updateUserPassword, arg.ID, arg.PasswordHash)
	return err
}

const blockUser = `
UPDATE users SET is_active = FALSE WHERE id = $1
`

func (q *Queries) BlockUser(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, blockUser, id)
	return tag.RowsAffected(), err
}

const deleteUser = `
DELETE FROM users WHERE id = $1
`

func (q *Queries) DeleteUser(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteUser, id)
	return tag.RowsAffected(), err
}

const countUserRecipes = `
SELECT count(*) FROM recipes WHERE author_id = $1
`

func (q *Queries) CountUserRecipes(ctx context.Context, authorID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countUserRecipes, authorID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
