package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveCheckpoints moves the checkpoint directory to an archive with timestamp
func ArchiveCheckpoints(checkpointDir string) error {
	// Check if checkpoint directory exists
	if _, err := os.Stat(checkpointDir); os.IsNotExist(err) {
		return fmt.Errorf("checkpoint directory does not exist: %s", checkpointDir)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(checkpointDir)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("checkpoints-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("checkpoints-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename checkpoint directory to archive
	if err := os.Rename(checkpointDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive checkpoint directory: %w", err)
	}

	fmt.Printf("Checkpoint directory archived to: %s\n", archivePath)
	return nil
}
