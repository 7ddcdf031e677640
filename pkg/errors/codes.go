package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary: opening, reading, writing, seeking or syncing a segment
	// file, or listing the data directory.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints. This maps
	// to HTTP 400-series errors and indicates problems with the request itself
	// rather than system failures.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories. These are the equivalent of HTTP 500 errors and
	// indicate bugs, assertion failures, or other programming errors that
	// shouldn't occur during normal operation.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Storage-specific error codes extend the base error taxonomy to handle the
// unique failure modes that occur in persistent storage systems.
const (
	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	// This is distinct from generic IO errors because it has a specific resolution path:
	// the user needs to adjust file/directory permissions or run with elevated privileges.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"
)

// Engine error codes name the failure kinds the engine contract promises
// at its boundary: malformed records, absent keys, index/record-kind
// mismatches and reader back pressure.
const (
	// ErrorCodeSerde indicates a command record could not be encoded during
	// Set/Remove or decoded during Get. During Open a malformed record ends
	// replay of its segment instead of surfacing as an error.
	ErrorCodeSerde ErrorCode = "SERDE_ERROR"

	// ErrorCodeKeyNotFound indicates Remove was called on a key absent from
	// the index. It is the only error kind callers should expect in normal
	// operation.
	ErrorCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// ErrorCodeUnexpectedCommandType indicates the index pointed at a command
	// that decoded to something other than Set. The index should never point
	// at a Remove record; observing one is internal corruption.
	ErrorCodeUnexpectedCommandType ErrorCode = "UNEXPECTED_COMMAND_TYPE"

	// ErrorCodeNoReaderAvailable indicates the reader pool had no handle to
	// lend for a Get. It is transient back pressure, not a correctness fault.
	ErrorCodeNoReaderAvailable ErrorCode = "NO_READER_AVAILABLE"
)
