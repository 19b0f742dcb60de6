// Package config contains utilities for loading configs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/iceadmin/foodgram/internal/password"
)

const configFilePath = "/data/foodgram.yaml"

const appSecretBytes = 32

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecret struct {
	Value   string `yaml:"value"`
	Version string `yaml:"version"`
}

func (a AppSecret) Validate() error {
	if len([]byte(a.Value)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"required,hostname_rfc1123"`
	Database string `yaml:"database" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

// URL renders the postgres connection string.
func (d Database) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

type FileStore struct {
	Endpoint  string `yaml:"endpoint" validate:"required"`
	AccessKey string `yaml:"access_key" validate:"required"`
	SecretKey string `yaml:"secret_key" validate:"required"`
	Bucket    string `yaml:"bucket" validate:"required"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicURL is the externally reachable base for stored objects.
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`
}

type Admin struct {
	Username  string        `yaml:"username"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Password  AdminPassword `yaml:"password"`
}

// Configured reports whether an admin account should be seeded.
func (a Admin) Configured() bool {
	return a.Username != "" && a.Email != "" && a.Password != ""
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	Admin      Admin     `yaml:"admin"`
	FileStore  FileStore `yaml:"filestore"`
	Database   Database  `yaml:"database"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	dbPort, err := strconv.ParseUint(loadWithDefault("DATABASE_PORT", "5432"), 10, 16)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATABASE_PORT: %w", err)
	}

	return Config{
		Env:        loadWithDefault("ENV", EnvDev),
		HostOrigin: loadWithDefault("HOST_ORIGIN", "http://localhost:8080"),
		AppSecret: AppSecret{
			Value:   os.Getenv("APP_SECRET"),
			Version: loadWithDefault("APP_SECRET_VERSION", "1"),
		},
		Database: Database{
			Port:     uint16(dbPort),
			Host:     loadWithDefault("DATABASE_HOST", "localhost"),
			Database: os.Getenv("DATABASE"),
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASSWORD"),
		},
		FileStore: FileStore{
			Endpoint:  loadWithDefault("FILESTORE_ENDPOINT", "localhost:9000"),
			AccessKey: os.Getenv("FILESTORE_ACCESS_KEY"),
			SecretKey: os.Getenv("FILESTORE_SECRET_KEY"),
			Bucket:    loadWithDefault("FILESTORE_BUCKET", "foodgram"),
			UseSSL:    loadWithDefault("FILESTORE_USE_SSL", "false") == "true",
			PublicURL: os.Getenv("FILESTORE_PUBLIC_URL"),
		},
		Admin: Admin{
			Username:  os.Getenv("ADMIN_USERNAME"),
			FirstName: os.Getenv("ADMIN_FIRST_NAME"),
			LastName:  os.Getenv("ADMIN_LAST_NAME"),
			Email:     os.Getenv("ADMIN_EMAIL"),
			Password:  AdminPassword(os.Getenv("ADMIN_PASSWORD")),
		},
	}, nil
}

func loadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if conf.Env == "" {
		conf.Env = EnvDev
	}
	if conf.AppSecret.Version == "" {
		conf.AppSecret.Version = "1"
	}
	return conf, nil
}

// LoadConfig loads the YAML config file when present, otherwise falls back
// to environment variables, then validates the result.
func LoadConfig() (*Config, error) {
	return Load(configFilePath)
}

func Load(path string) (*Config, error) {
	var conf Config
	var err error

	if _, statErr := os.Stat(path); statErr == nil {
		conf, err = loadConfigFromFile(path)
	} else {
		conf, err = loadConfigFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func Validate(conf *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(conf); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if err := conf.AppSecret.Validate(); err != nil {
		return fmt.Errorf("validating app secret: %w", err)
	}
	if conf.Admin.Configured() {
		if err := conf.Admin.Password.Validate(); err != nil {
			return fmt.Errorf("validating admin password: %w", err)
		}
	}
	return nil
}
