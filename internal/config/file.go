package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML form of Env. Empty fields leave the
// current value alone.
type FileConfig struct {
	Server struct {
		Addr    string `yaml:"addr"`
		GinMode string `yaml:"gin_mode"`
	} `yaml:"server"`
	Database struct {
		Host     string  `yaml:"host"`
		Port     string  `yaml:"port"`
		User     string  `yaml:"user"`
		Password *string `yaml:"password"`
		Name     string  `yaml:"name"`
	} `yaml:"database"`
	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return fc, nil
}

func (fc FileConfig) applyTo(env *Env) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&env.AppAddr, fc.Server.Addr)
	set(&env.GinMode, fc.Server.GinMode)
	set(&env.SessionSecret, fc.Session.Secret)
	set(&env.DB.Host, fc.Database.Host)
	set(&env.DB.Port, fc.Database.Port)
	set(&env.DB.User, fc.Database.User)
	set(&env.DB.Name, fc.Database.Name)
	if fc.Database.Password != nil {
		env.DB.Password = *fc.Database.Password
	}
}
