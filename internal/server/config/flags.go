package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/solsocial/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN (empty selects the in-memory store)
//	-s string   JWT HMAC secret key
//	-t int      bearer token validity, minutes
//	-w int      challenge freshness window, seconds
//	-e string   captcha verification endpoint URL
//	-k string   captcha secret (empty disables the captcha call)
//	-o string   CORS allowed origin
//	-l int      per-IP rate limit, requests per second
//	-b int      per-IP rate limit burst
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers (minutes/seconds) and then
//     converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-q", "-s", "-t", "-w", "-e", "-k", "-o", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")
	challengeWindow := fs.Int("w", int(config.ChallengeValidityDuration.Seconds()), "challenge_validity_duration (in seconds)")
	databaseTimeout := fs.Int("q", int(config.DatabaseTimeout.Seconds()), "database_timeout (in seconds)")

	fs.StringVar(&config.CaptchaEndpoint, "e", config.CaptchaEndpoint, "captcha verification endpoint")
	fs.StringVar(&config.CaptchaSecret, "k", config.CaptchaSecret, "captcha secret")
	fs.StringVar(&config.CORSAllowedOrigin, "o", config.CORSAllowedOrigin, "CORS allowed origin")
	fs.IntVar(&config.RateLimitRPS, "l", config.RateLimitRPS, "rate limit, requests per second per IP")
	fs.IntVar(&config.RateLimitBurst, "b", config.RateLimitBurst, "rate limit burst per IP")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.ChallengeValidityDuration = time.Duration(*challengeWindow) * time.Second
	config.DatabaseTimeout = time.Duration(*databaseTimeout) * time.Second
}
