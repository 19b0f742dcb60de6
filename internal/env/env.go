// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/iceadmin/foodgram/internal/config"
	"github.com/iceadmin/foodgram/internal/database"
	"github.com/iceadmin/foodgram/internal/filestore"
	"github.com/iceadmin/foodgram/internal/log"
)

type Env struct {
	Logger    *slog.Logger
	Database  *database.Database
	FileStore filestore.FileStoreInterface
	Config    *config.Config
}

type envKeyType struct{}

var envKey envKeyType

// WithCtx injects the Env into a context.
func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx extracts the Env from a context. A context without one yields
// a null Env rather than nil so call sites can log unconditionally.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok && e != nil {
		return e
	}
	return Null()
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
		Config: &config.Config{},
	}
}
