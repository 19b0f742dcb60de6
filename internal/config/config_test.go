package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testSecret = "test-secret-32-bytes-long-123456"

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_SECRET", testSecret)
	t.Setenv("DATABASE", "foodgram")
	t.Setenv("DATABASE_USER", "foodgram")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("FILESTORE_ACCESS_KEY", "minio")
	t.Setenv("FILESTORE_SECRET_KEY", "minio123")
}

func TestLoadFromEnvDefaults(t *testing.T) {
	setMinimalEnv(t)

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if conf.Env != EnvDev {
		t.Errorf("Env = %q, want %q", conf.Env, EnvDev)
	}
	if conf.HostOrigin != "http://localhost:8080" {
		t.Errorf("HostOrigin = %q, want default", conf.HostOrigin)
	}
	if conf.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", conf.Database.Port)
	}
	if conf.AppSecret.Version != "1" {
		t.Errorf("AppSecret.Version = %q, want \"1\"", conf.AppSecret.Version)
	}
	if conf.FileStore.Bucket != "foodgram" {
		t.Errorf("FileStore.Bucket = %q, want default", conf.FileStore.Bucket)
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("APP_SECRET", "too-short")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() accepted a short app secret")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foodgram.yaml")
	contents := `
app_secret:
  value: ` + testSecret + `
host_origin: https://foodgram.example
database:
  port: 5433
  host: db
  database: foodgram
  user: foodgram
  password: secret
filestore:
  endpoint: minio:9000
  access_key: minio
  secret_key: minio123
  bucket: media
env: PROD
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if conf.Env != EnvProd {
		t.Errorf("Env = %q, want %q", conf.Env, EnvProd)
	}
	if conf.Database.URL() != "postgresql://foodgram:secret@db:5433/foodgram" {
		t.Errorf("Database.URL() = %q", conf.Database.URL())
	}
	if conf.FileStore.Bucket != "media" {
		t.Errorf("FileStore.Bucket = %q, want media", conf.FileStore.Bucket)
	}
	if conf.AppSecret.Version != "1" {
		t.Errorf("AppSecret.Version = %q, want default \"1\"", conf.AppSecret.Version)
	}
}

func TestAdminConfigured(t *testing.T) {
	tests := []struct {
		name  string
		admin Admin
		want  bool
	}{
		{
			name: "fully configured",
			admin: Admin{
				Username: "admin",
				Email:    "admin@example.com",
				Password: "horse-battery-staple",
			},
			want: true,
		},
		{
			name:  "empty",
			admin: Admin{},
			want:  false,
		},
		{
			name: "missing password",
			admin: Admin{
				Username: "admin",
				Email:    "admin@example.com",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.admin.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}
