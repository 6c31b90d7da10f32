package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/goduration"
	"github.com/babarot/goduration/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Core    Core    `yaml:"core"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

type Core struct {
	// Concurrency bounds how many inputs are converted at once.
	Concurrency int `yaml:"concurrency" validate:"min=1,max=256"`
	// Timeout bounds a whole batch; zero disables it.
	Timeout goduration.Duration `yaml:"timeout" validate:"gte=0"`
}

type Output struct {
	Format   string `yaml:"format" validate:"required,oneof=plain table json"`
	Encoding string `yaml:"encoding" validate:"required,oneof=string nanoseconds"`
	Color    string `yaml:"color" validate:"required,oneof=auto always never"`
}

type Logging struct {
	Enabled  bool     `yaml:"enabled"`
	Level    string   `yaml:"level" validate:"logLevel"`
	Format   string   `yaml:"format" validate:"oneof=text json logfmt"`
	Rotation Rotation `yaml:"rotation"`
}

type Rotation struct {
	MaxSize  string `yaml:"max_size" validate:"validSize"`
	MaxFiles int    `yaml:"max_files" validate:"min=0"`
}

type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.GODURATION_CONFIG_PATH,
		DefaultContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

type parser struct {
	validate *validator.Validate
}

func newParser() parser {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("logLevel", validateLogLevel)

	return parser{validate: validate}
}

// readConfigFile decodes path over the defaults, so keys missing from the
// file keep their default values.
func (p parser) readConfigFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := p.check(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (p parser) check(cfg Config) error {
	err := p.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("validation error: Field %s, %q is invalid", verrs[0].Namespace(), fmt.Sprint(verrs[0].Value()))
	}
	return err
}

// Parse loads the config file at path. With an empty path the default
// location is used, and a missing default file yields Default().
func Parse(path string) (Config, error) {
	p := newParser()

	configPath := path
	if configPath == "" {
		configPath = env.GODURATION_CONFIG_PATH
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "config-file", configPath)
			return Default(), nil
		}
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err := p.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}
	return cfg, nil
}

// Validate checks cfg against the same rules Parse applies.
func Validate(cfg Config) error {
	return newParser().check(cfg)
}
