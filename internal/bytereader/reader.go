package bytereader

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ByteReader reads single bytes from files at arbitrary offsets
type ByteReader struct {
	logger logrus.FieldLogger
}

// NewByteReader creates a new byte reader. A nil logger discards all log output.
func NewByteReader(logger logrus.FieldLogger) *ByteReader {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &ByteReader{logger: logger}
}

// Read performs the read described by req
func (br *ByteReader) Read(req Request) (Result, error) {
	return br.ReadByteAt(req.Filename, req.Position)
}

// ReadByteAt opens path, seeks to offset and reads one byte. An offset at or
// beyond the end of the file yields NoData rather than an error, however large.
func (br *ByteReader) ReadByteAt(path string, offset int64) (Result, error) {
	if offset < 0 {
		return Result{}, &ArgumentError{Arg: "position", Value: strconv.FormatInt(offset, 10), Err: ErrNegativeOffset}
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{}, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Result{}, &FileAccessError{Path: path, Op: "stat", Err: err}
	}

	// Offsets past the filesystem's maximum file size make seek fail with
	// EINVAL, so regular files are bounded by their size before seeking.
	var result Result
	if info.Mode().IsRegular() && offset >= info.Size() {
		result = NoData(offset)
	} else {
		result, err = br.ReadFrom(file, offset)
	}
	if err != nil {
		var accessErr *FileAccessError
		if errors.As(err, &accessErr) {
			accessErr.Path = path
		}
		return Result{}, err
	}

	br.logger.WithFields(logrus.Fields{
		"file":   path,
		"offset": offset,
		"found":  result.Found,
	}).Debug("Read byte")

	return result, nil
}

// ReadFrom seeks rs to offset from its start and reads one byte
func (br *ByteReader) ReadFrom(rs io.ReadSeeker, offset int64) (Result, error) {
	if offset < 0 {
		return Result{}, &ArgumentError{Arg: "position", Value: strconv.FormatInt(offset, 10), Err: ErrNegativeOffset}
	}

	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return Result{}, &FileAccessError{Op: "seek", Err: err}
	}

	var buf [1]byte
	n, err := io.ReadFull(rs, buf[:])
	switch {
	case n == 1:
		return ByteAt(offset, buf[0]), nil
	case err == nil, errors.Is(err, io.EOF):
		return NoData(offset), nil
	default:
		return Result{}, &FileAccessError{Op: "read", Err: err}
	}
}
