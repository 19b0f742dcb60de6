package relation

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestAddMember(t *testing.T) {
	tests := []struct {
		name    string
		add     func(ctx context.Context) (int64, error)
		wantErr error
	}{
		{
			name: "inserted",
			add:  func(context.Context) (int64, error) { return 1, nil },
		},
		{
			name:    "zero rows means duplicate",
			add:     func(context.Context) (int64, error) { return 0, nil },
			wantErr: ErrAlreadyExists,
		},
		{
			name: "unique violation means duplicate",
			add: func(context.Context) (int64, error) {
				return 0, &pgconn.PgError{Code: uniqueViolationCode}
			},
			wantErr: ErrAlreadyExists,
		},
		{
			name: "other database errors surface",
			add: func(context.Context) (int64, error) {
				return 0, errors.New("connection reset")
			},
			wantErr: nil, // checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Toggle{Add: tt.add}.AddMember(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddMember() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "other database errors surface" {
				if err == nil || errors.Is(err, ErrAlreadyExists) {
					t.Errorf("AddMember() error = %v, want wrapped database error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("AddMember() error = %v, want nil", err)
			}
		})
	}
}

func TestRemoveMember(t *testing.T) {
	tests := []struct {
		name    string
		remove  func(ctx context.Context) (int64, error)
		wantErr error
	}{
		{
			name:   "removed",
			remove: func(context.Context) (int64, error) { return 1, nil },
		},
		{
			name:    "zero rows means absent",
			remove:  func(context.Context) (int64, error) { return 0, nil },
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Toggle{Remove: tt.remove}.RemoveMember(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RemoveMember() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRemoveMemberSurfacesDatabaseError(t *testing.T) {
	boom := errors.New("boom")
	err := Toggle{
		Remove: func(context.Context) (int64, error) { return 0, boom },
	}.RemoveMember(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("RemoveMember() error = %v, want wrapped %v", err, boom)
	}
}
