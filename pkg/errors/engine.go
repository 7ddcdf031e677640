package errors

// EngineError is a specialized error type for the engine's four
// boundary-facing failure kinds: Serde, KeyNotFound, UnexpectedCommandType
// and NoReaderAvailable. (Io failures travel as *StorageError, since they
// already carry the segment/offset context that matters for them.)
//
// It embeds baseError to inherit error chaining, codes and structured
// details, and adds the key/generation context that is almost always the
// first thing worth knowing about a failed Get/Set/Remove.
type EngineError struct {
	*baseError

	// key is the key the failing operation was processing, when known.
	key string

	// generation identifies the segment the failing command position
	// referred to, when the error originates from reading a command.
	generation uint64
}

// NewEngineError creates a new engine-specific error with the provided context.
func NewEngineError(err error, code ErrorCode, msg string) *EngineError {
	return &EngineError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while maintaining the EngineError type.
func (ee *EngineError) WithMessage(msg string) *EngineError {
	ee.baseError.WithMessage(msg)
	return ee
}

// WithCode sets the error code while preserving the EngineError type.
func (ee *EngineError) WithCode(code ErrorCode) *EngineError {
	ee.baseError.WithCode(code)
	return ee
}

// WithDetail adds contextual information while maintaining the EngineError type.
func (ee *EngineError) WithDetail(key string, value any) *EngineError {
	ee.baseError.WithDetail(key, value)
	return ee
}

// WithKey records which key the failing operation was processing.
func (ee *EngineError) WithKey(key string) *EngineError {
	ee.key = key
	return ee
}

// WithGeneration records which segment generation the failing command
// position referred to.
func (ee *EngineError) WithGeneration(generation uint64) *EngineError {
	ee.generation = generation
	return ee
}

// Key returns the key the failing operation was processing, if any.
func (ee *EngineError) Key() string {
	return ee.key
}

// Generation returns the segment generation involved in the error, if any.
func (ee *EngineError) Generation() uint64 {
	return ee.generation
}

// NewKeyNotFoundError creates the error Remove returns for an absent key.
func NewKeyNotFoundError(key string) *EngineError {
	return NewEngineError(nil, ErrorCodeKeyNotFound, "key not found").WithKey(key)
}

// NewUnexpectedCommandTypeError creates the error Get returns when the index
// resolves to a Remove record instead of a Set record. This indicates
// internal corruption: the index must never point at a Remove.
func NewUnexpectedCommandTypeError(key string, generation uint64) *EngineError {
	return NewEngineError(nil, ErrorCodeUnexpectedCommandType, "index entry resolved to a non-Set command").
		WithKey(key).
		WithGeneration(generation)
}

// NewNoReaderAvailableError creates the transient back-pressure error Get
// returns when the reader pool is empty.
func NewNoReaderAvailableError(key string) *EngineError {
	return NewEngineError(nil, ErrorCodeNoReaderAvailable, "no reader handle available").WithKey(key)
}

// NewSerdeError wraps a failure to encode or decode a command record.
func NewSerdeError(cause error, context string) *EngineError {
	return NewEngineError(cause, ErrorCodeSerde, "malformed command record: "+context)
}
