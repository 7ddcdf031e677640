// Package posio provides positioned, buffered wrappers over segment files:
// a Reader that tracks its own byte offset across reads and seeks, and a
// Writer that tracks the number of bytes accepted by Write, flushed or not. The
// writer uses the position it reports to record the (start, end) byte
// range of a just-appended command without an extra stat/seek syscall.
package posio

import (
	"bufio"
	"os"
)

// Writer is a buffered, append-only writer over a single segment file
// that tracks its end offset: the file's size at open plus every byte
// accepted by Write, whether or not it has been flushed yet.
type Writer struct {
	file     *os.File
	buf      *bufio.Writer
	position int64
}

// OpenWriter opens (creating if necessary) path for append and wraps it in
// a Writer. Append mode keeps the file's own offset and the Writer's
// userspace position tracking consistent even if the file were ever
// reopened while a previous handle is still live.
func OpenWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Writer{file: f, buf: bufio.NewWriter(f), position: stat.Size()}, nil
}

// Write implements io.Writer, advancing the tracked position by the
// number of bytes accepted into the buffer.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.position += int64(n)
	return n, err
}

// Flush pushes any buffered bytes to the OS. Position already reflects
// buffered-but-unflushed writes, so Flush does not itself move Position;
// it only changes how durable the bytes already counted are.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Position reports the offset one past the last byte handed to Write.
func (w *Writer) Position() int64 {
	return w.position
}

// Close flushes any buffered bytes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Reader is a buffered reader over a single segment file that tracks its
// own byte offset across reads and seeks, so a caller can detect whether
// a seek is actually necessary before issuing one.
type Reader struct {
	file     *os.File
	buf      *bufio.Reader
	position int64
}

// OpenReader opens path read-only and wraps it in a Reader positioned at
// the start of the file.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, buf: bufio.NewReader(f)}, nil
}

// Read implements io.Reader, advancing the tracked position by the number
// of bytes actually read.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.buf.Read(p)
	r.position += int64(n)
	return n, err
}

// Seek repositions the reader, discarding any buffered-but-unconsumed
// bytes so subsequent reads come from the new offset.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	pos, err := r.file.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	r.buf.Reset(r.file)
	r.position = pos
	return pos, nil
}

// Position reports the offset of the next byte Read will return.
func (r *Reader) Position() int64 {
	return r.position
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
