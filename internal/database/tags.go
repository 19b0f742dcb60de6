package database

import "context"

const listTags = `
SELECT id, name, color, slug FROM tags ORDER BY id
`

func (q *Queries) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := q.db.Query(ctx, listTags)
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

const getTag = `
SELECT id, name, color, slug FROM tags WHERE id = $1
`

func (q *Queries) GetTag(ctx context.Context, id int64) (Tag, error) {
	row := q.db.QueryRow(ctx, getTag, id)
	var t Tag
	err := row.Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	return t, err
}

const createTag = `
INSERT INTO tags (name, color, slug) VALUES ($1, $2, $3)
RETURNING id
`

type CreateTagParams struct {
	Name  string
	Color string
	Slug  string
}

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (int64, error) {
	row := q.db.QueryRow(ctx, createTag, arg.Name, arg.Color, arg.Slug)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateTag = `
UPDATE tags SET name = $2, color = $3, slug = $4 WHERE id = $1
`

type UpdateTagParams struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

func (q *Queries) UpdateTag(ctx context.Context, arg UpdateTagParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateTag, arg.ID, arg.Name, arg.Color, arg.Slug)
	return tag.RowsAffected(), err
}

const deleteTag = `
DELETE FROM tags WHERE id = $1
`

func (q *Queries) DeleteTag(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteTag, id)
	return tag.RowsAffected(), err
}
