package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv     string `mapstructure:"APP_ENV"`
	ServerPort string `mapstructure:"SERVER_PORT"`

	UploadsDir string `mapstructure:"UPLOADS_DIR"`

	// json or postgres
	RecordStore string `mapstructure:"RECORD_STORE"`
	DataFile    string `mapstructure:"DATA_FILE"`

	Host     string `mapstructure:"DB_HOST"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	DBPort   string `mapstructure:"DB_PORT"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// drive or s3
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`

	DriveFolderID     string `mapstructure:"DRIVE_FOLDER_ID"`
	DriveClientID     string `mapstructure:"DRIVE_CLIENT_ID"`
	DriveClientSecret string `mapstructure:"DRIVE_CLIENT_SECRET"`
	DriveRefreshToken string `mapstructure:"DRIVE_REFRESH_TOKEN"`

	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3Bucket          string `mapstructure:"S3_BUCKET"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3PublicBaseURL   string `mapstructure:"S3_PUBLIC_BASE_URL"`
	S3Folder          string `mapstructure:"S3_FOLDER"`
}

func Load() (*Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath("./")
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.ServerPort == "" {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}

	if cfg.RecordStore == "" {
		cfg.RecordStore = "json"
	}

	switch cfg.RecordStore {
	case "json":
		if cfg.DataFile == "" {
			cfg.DataFile = "data.json"
		}
	case "postgres":
		if cfg.User == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}

		if cfg.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}

		if cfg.Name == "" {
			return nil, fmt.Errorf("DB_NAME is required")
		}

		if cfg.DBPort == "" {
			return nil, fmt.Errorf("DB_PORT is required")
		}

		if cfg.Host == "" {
			return nil, fmt.Errorf("DB_HOST is required")
		}
	default:
		return nil, fmt.Errorf("unknown RECORD_STORE %q", cfg.RecordStore)
	}

	switch cfg.StorageDriver {
	case "drive":
		if cfg.DriveClientID == "" {
			return nil, fmt.Errorf("DRIVE_CLIENT_ID is required")
		}

		if cfg.DriveClientSecret == "" {
			return nil, fmt.Errorf("DRIVE_CLIENT_SECRET is required")
		}

		if cfg.DriveRefreshToken == "" {
			return nil, fmt.Errorf("DRIVE_REFRESH_TOKEN is required")
		}

		if cfg.DriveFolderID == "" {
			return nil, fmt.Errorf("DRIVE_FOLDER_ID is required")
		}
	case "s3":
		if cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("S3_ENDPOINT is required")
		}

		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required")
		}

		if cfg.S3AccessKeyID == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY_ID is required")
		}

		if cfg.S3SecretAccessKey == "" {
			return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY is required")
		}

		if cfg.S3Folder == "" {
			cfg.S3Folder = "uploads"
		}
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be drive or s3, got %q", cfg.StorageDriver)
	}

	return &cfg, nil
}
