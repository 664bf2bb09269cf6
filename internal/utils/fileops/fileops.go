package fileops

import (
	"os"
)

// FileOps provides a unified interface for the file operations the pipeline
// needs: validated reads with caching, existence probing, and create-only
// writes. It is the single filesystem boundary of the generator.
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
	contentCache  *Cache[string]
}

// NewFileOps creates a new FileOps instance
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
		contentCache:  NewCache[string](),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file and returns its contents as a string with caching
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", err
	}

	if cached, exists := fo.contentCache.Get(cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	contentStr := string(content)
	fo.contentCache.Set(cleanPath, contentStr)

	return contentStr, nil
}

// WriteNewFile writes content to a path that must not already exist. It
// returns false and performs no write when the path exists; any underlying
// I/O failure is returned as a hard error. The existence check and the write
// are not atomic; a concurrent external writer between the two is accepted
// for this tool's single-operator interactive use.
func (fo *FileOps) WriteNewFile(filePath string, content []byte, perm os.FileMode) (bool, error) {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return false, err
	}

	if fo.pathValidator.Exists(cleanPath) {
		return false, nil
	}

	if err := os.WriteFile(cleanPath, content, perm); err != nil {
		return false, fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	fo.contentCache.Delete(cleanPath)
	return true, nil
}

// EnsureDirectory creates a directory (and parents) if it doesn't exist
func (fo *FileOps) EnsureDirectory(dirPath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cleanPath, 0755); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return nil
}

// ReadDir reads a directory with path validation and error handling
func (fo *FileOps) ReadDir(dirPath string) ([]os.DirEntry, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(dirPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapDirectoryReadError(cleanPath, err)
	}

	return entries, nil
}

// Exists checks if a path exists
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
