package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/martinmr/iching/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// mapConfig validates the decoded file and converts it to the domain config.
func mapConfig(path string, fc fileConfig) (domain.Config, error) {
	if err := validate.Struct(fc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domain.Config{}, invalidField(path, fieldKey(verrs[0]), describe(verrs[0]))
		}
		return domain.Config{}, invalidField(path, "config", err.Error())
	}

	method, err := domain.ParseMethod(fc.Reading.Method)
	if err != nil {
		return domain.Config{}, invalidField(path, "reading.method", err.Error())
	}
	randomness, err := domain.ParseRandomness(fc.Reading.Randomness)
	if err != nil {
		return domain.Config{}, invalidField(path, "reading.randomness", err.Error())
	}

	return domain.Config{
		Reading: domain.ReadingConfig{
			Method:     method,
			Randomness: randomness,
		},
		Remote: domain.RemoteConfig{
			Endpoint:    fc.Remote.Endpoint,
			RPCEndpoint: fc.Remote.RPCEndpoint,
			APIKey:      strings.TrimSpace(fc.Remote.APIKey),
			Timeout:     fc.Remote.Timeout,
			UserAgent:   fc.Remote.UserAgent,
		},
		Output: domain.OutputConfig{
			Format: fc.Output.Format,
			Color:  fc.Output.Color,
		},
		Log: domain.LogConfig{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}, nil
}

// checkKeys rejects sections and keys the config does not know about, which
// would otherwise be ignored silently.
func checkKeys(path string, doc map[string]any) error {
	sections := make([]string, 0, len(doc))
	for s := range doc {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		keys, ok := knownKeys[section]
		if !ok {
			return invalidField(path, section, "unknown section")
		}
		body, ok := doc[section].(map[string]any)
		if !ok {
			if doc[section] == nil {
				continue
			}
			return invalidField(path, section, "expected a mapping")
		}
		for k := range body {
			if !slices.Contains(keys, k) {
				return invalidField(path, section+"."+k, "unknown key")
			}
		}
	}
	return nil
}

// fieldKey turns "fileConfig.Remote.RPCEndpoint" into "remote.rpc_endpoint".
func fieldKey(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	switch s {
	case "RPCEndpoint":
		return "rpc_endpoint"
	case "APIKey":
		return "api_key"
	case "UserAgent":
		return "user_agent"
	}
	return strings.ToLower(s)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "url":
		return fmt.Sprintf("must be an absolute URL, got %q", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
