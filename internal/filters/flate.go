package filters

import (
	"bufio"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// Filter identifies the compression of a stream
type Filter int

const (
	None Filter = iota
	Gzip
	Zlib
)

func (f Filter) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "none"
	}
}

// Detect returns the filter for the leading bytes of a stream.
func Detect(head []byte) Filter {
	if len(head) < 2 {
		return None
	}

	// gzip: 1f 8b
	if head[0] == 0x1f && head[1] == 0x8b {
		return Gzip
	}

	// zlib: CMF selects deflate (low nibble 8) and CMF*256+FLG is a
	// multiple of 31. JSON never starts this way: 0x78 is 'x'.
	if head[0]&0x0f == 8 && (uint16(head[0])<<8|uint16(head[1]))%31 == 0 {
		return Zlib
	}
	return None
}

// Decompress wraps r with the decoder its leading bytes call for. The
// returned ReadCloser closes the decoder only; closing r stays with the
// caller.
func Decompress(r io.Reader) (io.ReadCloser, Filter, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, fmt.Errorf("failed to read stream header: %w", err)
	}

	switch f := Detect(head); f {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return zr, f, nil
	case Zlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("failed to create zlib reader: %w", err)
		}
		return zr, f, nil
	default:
		return io.NopCloser(br), None, nil
	}
}
