// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iceadmin/foodgram/internal/argon2id"
	"github.com/iceadmin/foodgram/internal/config"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/env"
	"github.com/iceadmin/foodgram/internal/filestore"
)

func Database(ctx context.Context, conf *config.Config) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, conf.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

func FileStore(ctx context.Context, conf *config.Config) (*filestore.FileStore, error) {
	fs, err := filestore.New(filestore.Config{
		Endpoint:  conf.FileStore.Endpoint,
		AccessKey: conf.FileStore.AccessKey,
		SecretKey: conf.FileStore.SecretKey,
		Bucket:    conf.FileStore.Bucket,
		UseSSL:    conf.FileStore.UseSSL,
		PublicURL: conf.FileStore.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating file store client: %w", err)
	}
	if err := fs.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensuring bucket: %w", err)
	}
	return fs, nil
}

// Admin seeds the admin account from the config if one is configured and
// no account with its email exists yet. Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	admin := env.Config.Admin
	if !admin.Configured() {
		env.Logger.Info("admin account not configured, skipping admin setup")
		return nil
	}

	if _, err := mail.ParseAddress(admin.Email); err != nil {
		return fmt.Errorf("parsing admin email: %w", err)
	}

	_, err := env.Database.GetUserByEmail(ctx, admin.Email)
	if err == nil {
		env.Logger.Info("admin already setup, skipping setup")
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for admin account: %w", err)
	}

	hashedPassword, err := argon2id.EncodeHash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	_, err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hashedPassword,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		Role:         database.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.Info("successfully setup admin!")

	return nil
}
