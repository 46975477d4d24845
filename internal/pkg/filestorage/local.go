package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// LocalStorage persists uploads on the local filesystem and serves them
// back through the static /uploads route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended to returned file URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save stores an uploaded file under an optional subdirectory. The public
// id is the generated filename (with subpath), so deletion needs no lookup.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subPath string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	publicID := uniqueFilename
	if subPath != "" {
		publicID = subPath + "/" + uniqueFilename
	}

	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	url := strings.TrimRight(ls.baseURL, "/") + "/" + publicID

	logger.Info().Str("filename", fileHeader.Filename).Str("publicId", publicID).Msg("File saved")
	return &StoredFile{URL: url, PublicID: publicID}, nil
}

// Delete removes a stored file by its public id. Deleting a missing file
// is treated as success.
func (ls *LocalStorage) Delete(publicID string) error {
	if publicID == "" {
		return nil
	}

	// The public id is a relative path under basePath; reject traversal
	cleaned := filepath.Clean(publicID)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file identifier: %s", publicID)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
