package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/innergy-tools/workorders/internal/innergy"
)

const (
	// EnvPrefix namespaces the process environment variables this program
	// recognizes (WORKORDERS_BASE_URL, WORKORDERS_TIMEOUT, WORKORDERS_LOG_LEVEL).
	EnvPrefix = "WORKORDERS"

	// DefaultEnvPath is the conventional dotenv location: a .env file one
	// directory up from the invocation point.
	DefaultEnvPath = "../.env"

	// DefaultSettingsFile is the settings file looked up in the working
	// directory when --config is not given. Its absence is not an error.
	DefaultSettingsFile = ".workorders.yaml"
)

// Settings is the fully resolved runtime configuration for one run.
type Settings struct {
	// EnvPath is the dotenv file holding API_KEY.
	EnvPath string

	// BaseURL is the API host to call.
	BaseURL string

	// Timeout bounds the single HTTP request.
	Timeout time.Duration

	// LogLevel is the zerolog level name for stderr diagnostics.
	LogLevel string
}

// Flags carries the explicit command-line overrides into Resolve.
type Flags struct {
	// EnvPath is the --env-path flag value; empty means not given.
	EnvPath string

	// ConfigPath is the --config flag value; empty means not given, in
	// which case DefaultSettingsFile is tried and silently skipped when
	// absent. An explicitly named file that is missing is an error.
	ConfigPath string
}

// fileSettings is the YAML shape of the settings file. All keys are
// optional; absent keys leave the lower-precedence value in place.
type fileSettings struct {
	EnvPath string `yaml:"envPath"`
	BaseURL string `yaml:"baseURL"`
	Timeout string `yaml:"timeout"`
}

// envSettings is the process-environment shape, parsed by envconfig with
// the WORKORDERS_ prefix.
type envSettings struct {
	BaseURL  string        `envconfig:"BASE_URL"`
	Timeout  time.Duration `envconfig:"TIMEOUT"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"warn"`
}

// Resolve merges the four settings layers and returns the effective
// configuration for this run.
func Resolve(flags Flags) (*Settings, error) {
	// Layer 4: built-in defaults.
	settings := &Settings{
		EnvPath:  DefaultEnvPath,
		BaseURL:  innergy.DefaultBaseURL,
		Timeout:  innergy.DefaultTimeout,
		LogLevel: "warn",
	}

	// Layer 3: process environment.
	var env envSettings
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("parsing %s_* environment: %w", EnvPrefix, err)
	}
	if env.BaseURL != "" {
		settings.BaseURL = env.BaseURL
	}
	if env.Timeout > 0 {
		settings.Timeout = env.Timeout
	}
	if env.LogLevel != "" {
		settings.LogLevel = env.LogLevel
	}

	// Layer 2: optional YAML settings file.
	if err := applySettingsFile(settings, flags.ConfigPath); err != nil {
		return nil, err
	}

	// Layer 1: explicit flags win over everything.
	if flags.EnvPath != "" {
		settings.EnvPath = flags.EnvPath
	}

	return settings, nil
}

// applySettingsFile overlays values from the YAML settings file, if one is
// found. An explicitly requested file must exist; the default file is
// optional.
func applySettingsFile(settings *Settings, configPath string) error {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = DefaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var file fileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if file.EnvPath != "" {
		settings.EnvPath = file.EnvPath
	}
	if file.BaseURL != "" {
		settings.BaseURL = file.BaseURL
	}
	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in settings file %s: %w", file.Timeout, path, err)
		}
		settings.Timeout = timeout
	}

	return nil
}
