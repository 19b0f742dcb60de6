package database

import (
	"context"
	"time"
)

const createRefreshToken = `
INSERT INTO refresh_tokens (user_id, token, expires_at)
VALUES ($1, $2, $3)
RETURNING id
`

type CreateRefreshTokenParams struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

func (q *Queries) CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (int64, error) {
	row := q.db.QueryRow(ctx, createRefreshToken, arg.UserID, arg.Token, arg.ExpiresAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const deleteRefreshToken = `
DELETE FROM refresh_tokens WHERE token = $1
`

func (q *Queries) DeleteRefreshToken(ctx context.Context, token string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteRefreshToken, token)
	return tag.RowsAffected(), err
}

const deleteUserRefreshTokens = `
DELETE FROM refresh_tokens WHERE user_id = $1
`

// DeleteUserRefreshTokens revokes every outstanding refresh token of a
// user. Logout calls this; repeated calls are no-ops.
func (q *Queries) DeleteUserRefreshTokens(ctx context.Context, userID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteUserRefreshTokens, userID)
	return tag.RowsAffected(), err
}
