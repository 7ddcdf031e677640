package record

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	n, err := Encode(&buf, NewSet("a", "1"))
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)

	cmd, consumed, err := Decode(&buf)
	require.NoError(t, err)
	require.EqualValues(t, n, consumed)
	require.Equal(t, KindSet, cmd.Kind)
	require.Equal(t, "a", cmd.Key)
	require.Equal(t, "1", cmd.Value)
}

func TestEncodeDecodeMultipleRecords(t *testing.T) {
	var buf bytes.Buffer

	_, err := Encode(&buf, NewSet("a", "1"))
	require.NoError(t, err)
	_, err = Encode(&buf, NewRemove("a"))
	require.NoError(t, err)

	first, _, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindSet, first.Kind)

	second, _, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, KindRemove, second.Kind)
	require.Equal(t, "a", second.Key)

	_, _, err = Decode(&buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestDecodeTruncatedTailIsDistinctFromCleanEOF(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, NewSet("a", "1"))
	require.NoError(t, err)

	truncated := buf.Bytes()[:buf.Len()-2]
	_, _, err = Decode(bytes.NewReader(truncated))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, err, io.EOF)
}

func TestDecodeEmptyStreamIsCleanEOF(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}
