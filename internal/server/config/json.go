package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/solsocial/internal/flagx"
	"github.com/dmitrijs2005/solsocial/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "5m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP          string         `json:"endpoint_addr_http"`
	DatabaseDSN               string         `json:"database_dsn"`
	DatabaseTimeout           timex.Duration `json:"database_timeout"`
	SecretKey                 string         `json:"secret_key"`
	TokenValidityDuration     timex.Duration `json:"token_validity_duration"`
	ChallengeValidityDuration timex.Duration `json:"challenge_validity_duration"`
	CaptchaEndpoint           string         `json:"captcha_endpoint"`
	CaptchaSecret             string         `json:"captcha_secret"`
	CaptchaTimeout            timex.Duration `json:"captcha_timeout"`
	RateLimitRPS              int            `json:"rate_limit_rps"`
	RateLimitBurst            int            `json:"rate_limit_burst"`
	CORSAllowedOrigin         string         `json:"cors_allowed_origin"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.DatabaseTimeout = c.DatabaseTimeout.Duration
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.ChallengeValidityDuration = c.ChallengeValidityDuration.Duration
	config.CaptchaEndpoint = c.CaptchaEndpoint
	config.CaptchaSecret = c.CaptchaSecret
	config.CaptchaTimeout = c.CaptchaTimeout.Duration
	config.RateLimitRPS = c.RateLimitRPS
	config.RateLimitBurst = c.RateLimitBurst
	config.CORSAllowedOrigin = c.CORSAllowedOrigin
}
