// Package errors provides the engine's structured error hierarchy.
//
// Every fallible boundary in kivo returns one of a small number of typed
// errors instead of a bare string: *ValidationError for malformed caller
// input (an empty key, for instance), *StorageError for segment I/O
// failures, and *EngineError for the engine-contract failure kinds (Serde,
// KeyNotFound, UnexpectedCommandType, NoReaderAvailable). All three embed
// baseError, so error codes, causes and structured details are consistent
// across the hierarchy, and errors.Is/errors.As work through the chain via
// Unwrap.
package errors

import (
	stdErrors "errors"
	"os"
	"syscall"
)

// IsValidationError checks if the given error is a ValidationError or contains one in its error chain.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stdErrors.As(err, &ve)
}

// IsStorageError determines if an error is related to segment I/O: opening,
// reading, writing or syncing a segment file, or creating the data
// directory.
func IsStorageError(err error) bool {
	var se *StorageError
	return stdErrors.As(err, &se)
}

// IsEngineError identifies errors that originate from the engine contract
// boundary (Serde, KeyNotFound, UnexpectedCommandType, NoReaderAvailable).
func IsEngineError(err error) bool {
	var ee *EngineError
	return stdErrors.As(err, &ee)
}

// AsValidationError safely extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stdErrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsStorageError extracts StorageError context from an error chain: the
// generation, offset, file name and path involved.
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsEngineError extracts EngineError context from an error chain: the key
// and, where relevant, the generation that was being processed.
func AsEngineError(err error) (*EngineError, bool) {
	var ee *EngineError
	if stdErrors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// IsKeyNotFound reports whether err is the KeyNotFound error Remove returns
// for an absent key.
func IsKeyNotFound(err error) bool {
	ee, ok := AsEngineError(err)
	return ok && ee.Code() == ErrorCodeKeyNotFound
}

// IsNoReaderAvailable reports whether err is the transient back-pressure
// error Get returns when the reader pool is empty.
func IsNoReaderAvailable(err error) bool {
	ee, ok := AsEngineError(err)
	return ok && ee.Code() == ErrorCodeNoReaderAvailable
}

// GetErrorCode extracts the error code from any error that supports it, or
// returns ErrorCodeInternal for errors that don't have specific codes.
func GetErrorCode(err error) ErrorCode {
	if ve, ok := AsValidationError(err); ok {
		return ve.Code()
	}
	if se, ok := AsStorageError(err); ok {
		return se.Code()
	}
	if ee, ok := AsEngineError(err); ok {
		return ee.Code()
	}
	return ErrorCodeInternal
}

// GetErrorDetails extracts structured details from any error that supports
// them, returning an empty map for errors without details.
func GetErrorDetails(err error) map[string]any {
	if ve, ok := AsValidationError(err); ok {
		if details := ve.Details(); details != nil {
			return details
		}
	}
	if se, ok := AsStorageError(err); ok {
		if details := se.Details(); details != nil {
			return details
		}
	}
	if ee, ok := AsEngineError(err); ok {
		if details := ee.Details(); details != nil {
			return details
		}
	}
	return make(map[string]any)
}

// ClassifyDirectoryCreationError analyzes data-directory creation failures
// and returns an error carrying the specific, actionable reason.
func ClassifyDirectoryCreationError(err error, path string) error {
	if os.IsPermission(err) {
		return NewStorageError(
			err, ErrorCodePermissionDenied,
			"insufficient permissions to create data directory",
		).WithPath(path).WithDetail("operation", "directory_creation")
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewStorageError(
					err, ErrorCodeDiskFull, "insufficient disk space to create data directory",
				).WithPath(path).WithDetail("operation", "directory_creation")
			case syscall.EROFS:
				return NewStorageError(
					err, ErrorCodeFilesystemReadonly, "cannot create directory on read-only filesystem",
				).WithPath(path).WithDetail("operation", "directory_creation")
			}
		}
	}

	return NewStorageError(err, ErrorCodeIO, "failed to create data directory").
		WithPath(path).WithDetail("operation", "directory_creation")
}

// ClassifySegmentOpenError analyzes segment file open failures and returns
// an error carrying the specific, actionable reason.
func ClassifySegmentOpenError(err error, path string, generation uint64) error {
	if os.IsPermission(err) {
		return NewStorageError(
			err, ErrorCodePermissionDenied, "insufficient permissions to open segment file",
		).WithPath(path).WithGeneration(generation).WithDetail("operation", "segment_open")
	}

	if pathErr, ok := err.(*os.PathError); ok {
		if errno, ok := pathErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ENOSPC:
				return NewStorageError(
					err, ErrorCodeDiskFull, "insufficient disk space to create segment file",
				).WithPath(path).WithGeneration(generation).WithDetail("operation", "segment_open")
			case syscall.EROFS:
				return NewStorageError(
					err, ErrorCodeFilesystemReadonly, "cannot create segment file on read-only filesystem",
				).WithPath(path).WithGeneration(generation).WithDetail("operation", "segment_open")
			}
		}
	}

	return NewStorageError(err, ErrorCodeIO, "failed to open segment file").
		WithPath(path).WithGeneration(generation).WithDetail("operation", "segment_open")
}
