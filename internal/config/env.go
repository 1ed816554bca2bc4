package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DBConfig describes where the trip tables live.
type DBConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     string `yaml:"port" validate:"required,numeric"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required"`
}

type Env struct {
	AppAddr       string   `validate:"required"`
	GinMode       string   `validate:"omitempty,oneof=debug release test"`
	DB            DBConfig
	SessionSecret string
	ConfigFile    string
}

// DefaultDB is the fixed local database the page was built against.
func DefaultDB() DBConfig {
	return DBConfig{
		Host:     "localhost",
		Port:     "3306",
		User:     "root",
		Password: "yogeshwaran",
		Name:     "redbus_project",
	}
}

// LoadEnv builds the runtime settings. Precedence, lowest first: built-in
// defaults, the YAML file named by CONFIG_FILE, then environment variables
// (including those from a .env file in the working directory).
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	env := Env{
		AppAddr: ":8080",
		DB:      DefaultDB(),
	}

	env.ConfigFile = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	if env.ConfigFile != "" {
		fc, err := LoadFile(env.ConfigFile)
		if err != nil {
			return Env{}, err
		}
		fc.applyTo(&env)
	}

	overrideFromEnv(&env.AppAddr, "APP_ADDR")
	overrideFromEnv(&env.GinMode, "GIN_MODE")
	overrideFromEnv(&env.SessionSecret, "SESSION_SECRET")
	overrideFromEnv(&env.DB.Host, "DB_HOST")
	overrideFromEnv(&env.DB.Port, "DB_PORT")
	overrideFromEnv(&env.DB.User, "DB_USER")
	overrideFromEnv(&env.DB.Name, "DB_NAME")
	if pass, ok := os.LookupEnv("DB_PASS"); ok {
		env.DB.Password = pass
	}

	if err := validator.New().Struct(env); err != nil {
		return Env{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return env, nil
}

func overrideFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
