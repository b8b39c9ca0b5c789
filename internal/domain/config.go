package domain

import "time"

// Config represents the iching configuration after defaults, file, env and
// flags have been merged.
type Config struct {
	Reading ReadingConfig
	Remote  RemoteConfig
	Output  OutputConfig
	Log     LogConfig
}

type ReadingConfig struct {
	Method     Method
	Randomness Randomness
}

// RemoteConfig configures the true-random service. An empty APIKey selects
// the keyless plain-text API; otherwise the JSON-RPC API is used.
type RemoteConfig struct {
	Endpoint    string
	RPCEndpoint string
	APIKey      string
	Timeout     time.Duration
	UserAgent   string
}

type OutputConfig struct {
	Format string
	Color  bool
}

type LogConfig struct {
	Level string
	File  string
}

// DefaultConfig provides sane defaults if the config file is partially missing.
func DefaultConfig() Config {
	return Config{
		Reading: ReadingConfig{
			Method:     MethodYarrowStalks,
			Randomness: RandomnessRemote,
		},
		Remote: RemoteConfig{
			Endpoint:    "https://www.random.org",
			RPCEndpoint: "https://api.random.org/json-rpc/4/invoke",
			Timeout:     10 * time.Second,
			UserAgent:   "iching-cli",
		},
		Output: OutputConfig{
			Format: "pretty",
			Color:  true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
