package config

import "time"

// fileConfig mirrors the config file layout. Keys are also reachable as
// ICHING_<SECTION>_<KEY> environment variables.
type fileConfig struct {
	Reading struct {
		Method     string `mapstructure:"method" validate:"required,oneof=yarrow-stalks coin"`
		Randomness string `mapstructure:"randomness" validate:"required,oneof=random pseudorandom"`
	} `mapstructure:"reading"`

	Remote struct {
		Endpoint    string        `mapstructure:"endpoint" validate:"required,url"`
		RPCEndpoint string        `mapstructure:"rpc_endpoint" validate:"required,url"`
		APIKey      string        `mapstructure:"api_key"`
		Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
		UserAgent   string        `mapstructure:"user_agent" validate:"required"`
	} `mapstructure:"remote"`

	Output struct {
		Format string `mapstructure:"format" validate:"required,oneof=pretty json yaml"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`

	Log struct {
		Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// knownKeys lists every accepted section and key of the config file.
var knownKeys = map[string][]string{
	"reading": {"method", "randomness"},
	"remote":  {"endpoint", "rpc_endpoint", "api_key", "timeout", "user_agent"},
	"output":  {"format", "color"},
	"log":     {"level", "file"},
}
