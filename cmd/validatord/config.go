package main

import (
	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"validatord"`
	LogLevel string `env:"LOG_LEVEL"`

	// SchemaDir holds one YAML file per schema; the file name is the schema name.
	SchemaDir string `env:"SCHEMA_DIR" envDefault:"./schemas"`
	// LookupBackend selects the store for unique/exist rules:
	// none, pg, redis, mongo or opensearch.
	LookupBackend string `env:"LOOKUP_BACKEND" envDefault:"none"`

	DateFormat     string `env:"VALIDATOR_DATE_FORMAT"`
	DatetimeFormat string `env:"VALIDATOR_DATETIME_FORMAT"`
	MaxJSONSize    int64  `env:"HTTP_MAX_JSON_SIZE" envDefault:"1048576"`
	MaxMemory      int64  `env:"HTTP_MAX_MULTIPART_MEMORY" envDefault:"10485760"`

	HTTP httpserver.Config
}
