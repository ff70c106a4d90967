package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingEnv is returned when a required setting has no value.
var ErrMissingEnv = errors.New("required environment variable is not set")

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	CORS    CORSConfig
	Log     LogConfig
	MinIO   MinIOConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	APIPrefix    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type CORSConfig struct {
	// AllowedOrigins is the parsed CORS_ORIGINS list; ["*"] allows any origin.
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
	File  string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type UploadConfig struct {
	MaxBytes int64
	URLTTL   time.Duration
}

// Enabled reports whether object storage is configured.
func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" }

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("API_PREFIX", "/api")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MINIO_BUCKET", "golnavaz")
	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	viper.SetDefault("UPLOAD_URL_TTL", 900)

	uri := firstNonEmpty(viper.GetString("MONGO_URL"), viper.GetString("MONGODB_URI"))
	if uri == "" {
		return nil, fmt.Errorf("%w: MONGO_URL", ErrMissingEnv)
	}
	dbName := firstNonEmpty(viper.GetString("DB_NAME"), viper.GetString("MONGODB_DATABASE"))
	if dbName == "" {
		return nil, fmt.Errorf("%w: DB_NAME", ErrMissingEnv)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			APIPrefix:    "/" + strings.Trim(viper.GetString("API_PREFIX"), "/"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      uri,
			Database: dbName,
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: ParseOrigins(viper.GetString("CORS_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
			File:  viper.GetString("LOG_FILE"),
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
		Upload: UploadConfig{
			MaxBytes: viper.GetInt64("UPLOAD_MAX_BYTES"),
			URLTTL:   time.Duration(viper.GetInt("UPLOAD_URL_TTL")) * time.Second,
		},
	}

	return cfg, nil
}

// ParseOrigins splits a comma-separated origin list. An empty value means "*".
func ParseOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
