// Package record defines the on-disk encoding of the commands a segment
// holds: Set and Remove. Each record is length-framed so a streaming
// decoder can tell exactly where one command ends and the next begins,
// and so a truncated tail is distinguishable from a clean end of stream.
package record

import (
	"encoding/binary"
	"encoding/json"
	"io"

	kivoerrors "github.com/arvindh-k/kivo/pkg/errors"
)

// Kind identifies which command variant a record holds.
type Kind uint8

const (
	// KindSet associates a key with a value.
	KindSet Kind = iota + 1
	// KindRemove dissociates a key.
	KindRemove
)

// lengthWidth is the size, in bytes, of the big-endian payload-length
// prefix written ahead of every record.
const lengthWidth = 4

// Command is one mutation as it is held in memory: the union of Set and
// Remove, discriminated by Kind. Value is meaningless for KindRemove.
type Command struct {
	Kind  Kind
	Key   string
	Value string
}

// NewSet builds a Set command.
func NewSet(key, value string) Command {
	return Command{Kind: KindSet, Key: key, Value: value}
}

// NewRemove builds a Remove command.
func NewRemove(key string) Command {
	return Command{Kind: KindRemove, Key: key}
}

// wireCommand is the JSON shape written to disk. Field order is fixed by
// this struct definition, so encoding the same Command always produces
// identical bytes — required for compaction's opaque byte copy to remain
// meaningful and for P4/P6 (reopen observes the same mapping).
type wireCommand struct {
	Kind  Kind   `json:"kind"`
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// Encode writes one length-framed record to w and returns the total
// number of bytes written (frame header plus payload). The caller is
// responsible for flushing w afterward; Encode itself issues no flush.
func Encode(w io.Writer, cmd Command) (int64, error) {
	payload, err := json.Marshal(wireCommand{Kind: cmd.Kind, Key: cmd.Key, Value: cmd.Value})
	if err != nil {
		return 0, kivoerrors.NewSerdeError(err, "encode command")
	}

	var header [lengthWidth]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return 0, err
	}
	if _, err := w.Write(payload); err != nil {
		return 0, err
	}

	return int64(lengthWidth + len(payload)), nil
}

// Decode reads exactly one length-framed record from r and returns it
// along with the number of bytes consumed.
//
// A clean end of stream (zero bytes available before the length prefix)
// is reported as io.EOF, letting callers that scan a whole segment stop
// normally. Any other short read — a length prefix cut off mid-way, or a
// payload shorter than its declared length — is reported as
// io.ErrUnexpectedEOF, the "unexpected end" signal a truncated tail must
// raise rather than silently succeeding or being confused with a clean
// stop.
func Decode(r io.Reader) (Command, int64, error) {
	var header [lengthWidth]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return Command{}, 0, io.EOF
		}
		return Command{}, 0, io.ErrUnexpectedEOF
	}

	length := binary.BigEndian.Uint32(header[:])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Command{}, 0, io.ErrUnexpectedEOF
	}

	var wire wireCommand
	if err := json.Unmarshal(payload, &wire); err != nil {
		return Command{}, 0, kivoerrors.NewSerdeError(err, "decode command")
	}

	return Command{Kind: wire.Kind, Key: wire.Key, Value: wire.Value}, int64(lengthWidth) + int64(length), nil
}
