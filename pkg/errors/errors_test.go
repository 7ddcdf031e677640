package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsKeyNotFound(t *testing.T) {
	err := NewKeyNotFoundError("k")
	require.True(t, IsKeyNotFound(err))
	require.False(t, IsNoReaderAvailable(err))
}

func TestIsNoReaderAvailable(t *testing.T) {
	err := NewNoReaderAvailableError("k")
	require.True(t, IsNoReaderAvailable(err))
}

func TestAsEngineErrorExtractsContext(t *testing.T) {
	err := NewUnexpectedCommandTypeError("k", 5)
	ee, ok := AsEngineError(err)
	require.True(t, ok)
	require.Equal(t, "k", ee.Key())
	require.EqualValues(t, 5, ee.Generation())
}

func TestGetErrorCodeDefaultsToInternal(t *testing.T) {
	require.Equal(t, ErrorCodeInternal, GetErrorCode(nil))
}

func TestClassifySegmentOpenErrorWrapsPlainIOFailure(t *testing.T) {
	cause := &mockError{"boom"}
	err := ClassifySegmentOpenError(cause, "/data/1.log", 1)

	se, ok := AsStorageError(err)
	require.True(t, ok)
	require.Equal(t, ErrorCodeIO, se.Code())
	require.Equal(t, "/data/1.log", se.Path())
	require.EqualValues(t, 1, se.Generation())
}

type mockError struct{ msg string }

func (m *mockError) Error() string { return m.msg }
