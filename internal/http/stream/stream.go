package stream

import (
	"bytes"
	"errors"
	"io"
)

var (
	DELIMITER   = []byte{0x0D, 0x0A, 0x0D, 0x0A}
	LFDELIMITER = []byte{0x0A, 0x0A}

	ErrFrameTooLarge = errors.New("request header exceeds buffer size")
)

// ReadFrame reads from r until the end of the header block has been seen,
// the peer stops sending, or limit bytes are buffered. Whatever follows the
// header block in the same reads is returned with it.
func ReadFrame(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, limit)
	n := 0
	for {
		read, err := r.Read(buf[n:])
		n += read

		if headerEnd(buf[:n]) != -1 {
			return buf[:n], nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				return buf[:n], nil
			}
			return nil, err
		}

		if n == limit {
			return nil, ErrFrameTooLarge
		}
	}
}

// headerEnd returns the offset just past the blank line ending the header
// block, or -1 when the block is incomplete.
func headerEnd(data []byte) int {
	crlf := bytes.Index(data, DELIMITER)
	lf := bytes.Index(data, LFDELIMITER)
	switch {
	case crlf == -1 && lf == -1:
		return -1
	case lf == -1 || (crlf != -1 && crlf < lf):
		return crlf + len(DELIMITER)
	default:
		return lf + len(LFDELIMITER)
	}
}

// SplitHeaderAndBody splits a frame at the end of its header block. The body
// is empty when no blank line was found.
func SplitHeaderAndBody(data []byte) ([]byte, []byte) {
	idx := headerEnd(data)
	if idx == -1 {
		return data, nil
	}
	return data[:idx], data[idx:]
}
