package errors

import "fmt"

// Common error construction patterns used throughout the codebase

// NewModuleNotFoundError reports that no module manifest was found walking
// up from the given path
func NewModuleNotFoundError(startPath, manifestName string) *BaseError {
	message := fmt.Sprintf("no %s found walking up from '%s'", manifestName, startPath)
	return New(ModuleNotFoundErrorCode, message).
		WithContext("start_path", startPath).
		WithContext("manifest", manifestName).
		WithSuggestion("run from inside a module directory or pass an explicit target path").
		WithSuggestion(fmt.Sprintf("check that the module root contains a %s manifest", manifestName))
}

// NewResourceNotFoundError reports that no reachable module defines the
// requested resource
func NewResourceNotFoundError(resourceType, resourceName string) *BaseError {
	message := fmt.Sprintf("no module defines %s '%s'", resourceType, resourceName)
	return New(ResourceNotFoundErrorCode, message).
		WithContext("resource_type", resourceType).
		WithContext("resource_name", resourceName).
		WithSuggestion("check the resource name spelling (names are matched in kebab-case)").
		WithSuggestion("pass -source to point at the module that defines it")
}

// WrapManifestError wraps a manifest read or decode failure
func WrapManifestError(path string, cause error) *BaseError {
	return Wrapf(ManifestErrorCode, cause, "invalid module manifest '%s'", path).
		WithLocation(SourceLocation{File: path}).
		WithContext("path", path)
}

// WrapParseError wraps a source analysis failure
func WrapParseError(file string, cause error) *BaseError {
	return Wrapf(ParseErrorCode, cause, "failed to analyze %s", file).
		WithLocation(SourceLocation{File: file})
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapGenerateError wraps a synthesis failure for a target file
func WrapGenerateError(targetFile string, cause error) *BaseError {
	return Wrapf(GenerationErrorCode, cause, "failed to generate %s", targetFile).
		WithContext("target_file", targetFile)
}

// WrapPromptError wraps an interactive prompt failure
func WrapPromptError(prompt string, cause error) *BaseError {
	return Wrapf(PromptErrorCode, cause, "prompt '%s' failed", prompt).
		WithSuggestion("run from an interactive terminal; prompts cannot be answered in a pipe")
}

// IsModuleNotFound reports whether err is a module resolution failure
func IsModuleNotFound(err error) bool {
	return HasCode(err, ModuleNotFoundErrorCode)
}

// IsResourceNotFound reports whether err is a resource location failure
func IsResourceNotFound(err error) bool {
	return HasCode(err, ResourceNotFoundErrorCode)
}
