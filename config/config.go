package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	ServerPort  int
	DBPath      string

	// Storage paths
	StoragePath string
	UploadsPath string
	OutputsPath string
	TempPath    string

	// Render settings
	CanvasWidth  int
	CanvasHeight int
	FPS          int
	FitMode      string

	// Caption style overrides
	FontPath string
	FontSize float64

	// Worker settings
	PollIntervalSeconds int
}

// LoadConfig loads configuration based on environment
func LoadConfig() *Config {
	env := os.Getenv("CAPTION_STUDIO_ENV")
	if env == "" {
		env = "development"
	}

	var cfg Config
	cfg.Environment = env

	if env == "production" {
		cfg.ServerPort = 8080
		cfg.DBPath = "/var/lib/caption-studio/data/captionstudio.db"
		cfg.StoragePath = "/var/lib/caption-studio/storage"
	} else {
		cfg.ServerPort = 8080
		homeDir, _ := os.UserHomeDir()
		basePath := filepath.Join(homeDir, "caption-studio")
		cfg.DBPath = filepath.Join(basePath, "data", "captionstudio.db")
		cfg.StoragePath = filepath.Join(basePath, "storage")
	}

	if port := os.Getenv("CAPTION_STUDIO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.ServerPort = p
		}
	}

	// Derived storage paths
	cfg.UploadsPath = filepath.Join(cfg.StoragePath, "uploads")
	cfg.OutputsPath = filepath.Join(cfg.StoragePath, "outputs")
	cfg.TempPath = filepath.Join(cfg.StoragePath, "temp")

	// Render settings (vertical 9:16 output)
	cfg.CanvasWidth = 1080
	cfg.CanvasHeight = 1920
	cfg.FPS = 30
	cfg.FitMode = "cover"

	// Caption style
	cfg.FontPath = os.Getenv("CAPTION_STUDIO_FONT")
	cfg.FontSize = 56

	cfg.PollIntervalSeconds = 5

	fmt.Printf("Loaded configuration for environment: %s\n", env)
	return &cfg
}
