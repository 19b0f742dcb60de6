// Package relation implements the shared toggle algorithm over a join
// relation (favorites, shopping cart, subscriptions): an add that rejects
// duplicates and a remove that rejects absent pairs.
package relation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAlreadyExists = errors.New("pair already in relation")
	ErrNotFound      = errors.New("pair not in relation")
	ErrSelfReference = errors.New("relation cannot reference itself")
)

const uniqueViolationCode = "23505"

// Toggle describes one join relation. Add and Remove report the number of
// rows they affected; the add query is expected to be atomic with respect
// to duplicates (ON CONFLICT DO NOTHING or equivalent).
type Toggle struct {
	Add    func(ctx context.Context) (int64, error)
	Remove func(ctx context.Context) (int64, error)
}

// AddMember inserts the pair, translating both a zero-row insert and a
// unique-constraint violation into ErrAlreadyExists. The constraint is the
// backstop for two concurrent identical adds; neither outcome may surface
// as a server fault.
func (t Toggle) AddMember(ctx context.Context) error {
	rows, err := t.Add(ctx)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("adding to relation: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// RemoveMember deletes the pair; removing a pair that is not present is
// ErrNotFound.
func (t Toggle) RemoveMember(ctx context.Context) error {
	rows, err := t.Remove(ctx)
	if err != nil {
		return fmt.Errorf("removing from relation: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
