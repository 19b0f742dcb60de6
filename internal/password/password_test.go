package password

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "strong password",
			password: "correct-horse-battery-staple",
		},
		{
			name:     "too short",
			password: "abc1234",
			wantErr:  ErrTooShort,
		},
		{
			name:     "long but low entropy",
			password: "aaaaaaaaaaaa",
			wantErr:  ErrTooWeak,
		},
		{
			name:     "empty",
			password: "",
			wantErr:  ErrTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) error = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
