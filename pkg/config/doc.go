// Package config loads process configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files, and
// github.com/caarlos0/env/v11, which maps variables onto struct fields
// tagged with `env`. Every configuration type is parsed once and cached;
// Reset clears the cache, which is mostly useful in tests.
//
//	type Config struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		SchemaDir string `env:"SCHEMA_DIR" envDefault:"./schemas"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
