package report

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"oxynia/siigo-balance/internal/fileutils"
	"oxynia/siigo-balance/internal/logging"
)

// BundleZip packs the given files into a single zip archive for delivery,
// each stored under its base name.
func BundleZip(zipPath string, files []string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(zipPath)); err != nil {
		return err
	}

	out, err := os.Create(zipPath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating archive: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close archive")
		}
	}()

	zw := zip.NewWriter(out)
	for _, path := range files {
		if err := addToZip(zw, path); err != nil {
			_ = zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("error finalizing archive: %w", err)
	}

	logger.Info("Bundled datasets into archive",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: logging.FieldOutputFile, Value: zipPath})
	return nil
}

func addToZip(zw *zip.Writer, path string) error {
	file, err := os.Open(path) // #nosec G304 -- paths are produced by this tool
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	entry, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("error adding %s to archive: %w", path, err)
	}
	if _, err := io.Copy(entry, file); err != nil {
		return fmt.Errorf("error writing %s to archive: %w", path, err)
	}
	return nil
}
