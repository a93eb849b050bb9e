package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/streamhub/streamhub/internal/flagx"
	"github.com/streamhub/streamhub/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "24h" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	StorageBackend          string         `json:"storage_backend"`
	StorageDir              string         `json:"storage_dir"`
	DatabaseDSN             string         `json:"database_dsn"`
	SessionSecretKey        string         `json:"session_secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	MediaBackend            string         `json:"media_backend"`
	MediaDir                string         `json:"media_dir"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
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

	config.StorageBackend = c.StorageBackend
	config.StorageDir = c.StorageDir
	config.DatabaseDSN = c.DatabaseDSN
	config.SessionSecretKey = c.SessionSecretKey
	config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	config.MediaBackend = c.MediaBackend
	config.MediaDir = c.MediaDir
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
