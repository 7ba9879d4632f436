// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (an optional .env file in the working
// directory) with github.com/caarlos0/env/v11 (struct tag parsing) and caches
// the parsed value per configuration type, so packages can call Load for the
// same struct without parsing twice:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
// Load is safe for concurrent use. Reset clears the cache, which tests use to
// parse again after changing the environment.
package config
