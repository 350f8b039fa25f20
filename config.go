package fieldtypes

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Config holds the environment-driven defaults for registries, requests
// and the PlaygroundEngine.
//
// Example:
//
//	FIELDTYPES_RULE_DELIMITER="|"
//	FIELDTYPES_DEDUPE_FIELD_ORDER=true
//	FIELDTYPES_ALLOW_OVERWRITE=false
//	FIELDTYPES_INCLUDE_BUILTINS=true
//	FIELDTYPES_STOP_ON_FIRST_FAILURE=false
type Config struct {
	RuleDelimiter      string `env:"RULE_DELIMITER" envDefault:"|"`
	DedupeFieldOrder   bool   `env:"DEDUPE_FIELD_ORDER" envDefault:"false"`
	AllowOverwrite     bool   `env:"ALLOW_OVERWRITE" envDefault:"false"`
	IncludeBuiltins    bool   `env:"INCLUDE_BUILTINS" envDefault:"true"`
	StopOnFirstFailure bool   `env:"STOP_ON_FIRST_FAILURE" envDefault:"false"`
}

// LoadConfig parses Config from FIELDTYPES_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("failed to parse field types config: %w", err)
	}
	return cfg, nil
}

func (c Config) FieldTypesOpts(logger *zap.Logger, ctors ...Constructor) FieldTypesOpts {
	return FieldTypesOpts{
		Constructors:    ctors,
		IncludeBuiltins: c.IncludeBuiltins,
		AllowOverwrite:  c.AllowOverwrite,
		Logger:          logger,
	}
}

func (c Config) EngineOpts() PlaygroundEngineOpts {
	return PlaygroundEngineOpts{StopOnFirstFailure: c.StopOnFirstFailure}
}

// RequestOpts builds request options backed by a PlaygroundEngine
// configured from c.
func (c Config) RequestOpts(logger *zap.Logger) RequestOpts {
	return RequestOpts{
		Engine:           NewPlaygroundEngine(c.EngineOpts()),
		RuleDelimiter:    c.RuleDelimiter,
		DedupeFieldOrder: c.DedupeFieldOrder,
		Logger:           logger,
	}
}
