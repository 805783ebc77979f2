package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetDataPath returns the configured data storage path
// It expands ~ to home directory and uses ~/caption-studio-data as default
func GetDataPath() string {
	// Try to get from environment variable first
	dataPath := os.Getenv("CAPTION_STUDIO_DATA_PATH")

	if dataPath == "" {
		// Default to ~/caption-studio-data
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "/tmp/caption-studio-data"
		}
		dataPath = filepath.Join(homeDir, "caption-studio-data")
	}

	// Expand ~ if present
	if strings.HasPrefix(dataPath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			dataPath = filepath.Join(homeDir, dataPath[2:])
		}
	}

	return dataPath
}

// GetUploadsPath returns the uploaded source files directory
func GetUploadsPath() string {
	return filepath.Join(GetDataPath(), "uploads")
}

// GetOutputsPath returns the rendered videos directory
func GetOutputsPath() string {
	return filepath.Join(GetDataPath(), "outputs")
}

// GetTempPath returns the temporary files directory
func GetTempPath() string {
	return filepath.Join(GetDataPath(), "temp")
}

// EnsureDataDirectories creates all necessary data directories if they don't exist
func EnsureDataDirectories() error {
	dirs := []string{
		GetUploadsPath(),
		GetOutputsPath(),
		GetTempPath(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
