package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/deskscript/gutils/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "GUTILS_"

// Configuration represents the gutils configuration
type Configuration struct {
	// RuntimeDir overrides the XDG runtime directory for pid files. Empty
	// means $XDG_RUNTIME_DIR/<script>.
	RuntimeDir string `koanf:"runtime_dir"`
	// FileLock serializes pid file acquisition with an advisory lock
	FileLock bool `koanf:"file_lock"`
	// Shell runs `gutils shell` command lines
	Shell string `koanf:"shell" validate:"required"`
	// XTypeDelayMS is the default xdotool type delay in milliseconds
	XTypeDelayMS int `koanf:"xtype_delay_ms" validate:"min=0,max=10000"`
	// SecretDir is where secret files are published
	SecretDir string `koanf:"secret_dir" validate:"required"`
	// Notify holds notification defaults
	Notify notify.Config `koanf:"notify"`
}

// TypeDelay returns XTypeDelayMS as a duration
func (c *Configuration) TypeDelay() time.Duration {
	return time.Duration(c.XTypeDelayMS) * time.Millisecond
}

// Load loads configuration from the user config file, an explicit config
// file and the environment.
// Priority: Environment variables > explicit config > user config > defaults
//
// An explicit configPath that does not exist is an error; a missing user
// config is not.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			if err := loadFile(k, userPath); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadFile(k, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	source := configPath
	if source == "" {
		source = "config"
	}
	if err := validateStruct(&cfg, source); err != nil {
		return nil, err
	}

	cfg.RuntimeDir = expandHomePath(cfg.RuntimeDir)
	cfg.SecretDir = expandHomePath(cfg.SecretDir)

	return &cfg, nil
}

// loadFile loads a JSON or YAML file depending on its extension
func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := ValidateYAMLSyntax(path); err != nil {
			return err
		}
		return k.Load(file.Provider(path), yaml.Parser())
	default:
		return k.Load(file.Provider(path), json.Parser())
	}
}

// validateStruct runs the validator tags and reports the first failing
// field as a ValidationError.
func validateStruct(cfg *Configuration, filePath string) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(koanfTagName)
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			FilePath: filePath,
			Field:    fieldKey(fe.Namespace()),
			Message:  describeTag(fe),
		}
	}
	return fmt.Errorf("config validation failed: %w", err)
}

// envTransform converts environment variable names to config keys
// Example: GUTILS_XTYPE_DELAY_MS -> xtype_delay_ms, GUTILS_NOTIFY_URGENCY -> notify.urgency
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "notify_"); ok {
		return "notify." + rest
	}
	return key
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
