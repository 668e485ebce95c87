//go:build !unix

package source

import "errors"

// mmapFile is unavailable on this platform; SlurpFile falls back to a
// straight read.
func mmapFile(path string) ([]byte, func(), error) {
	return nil, nil, errors.New("source: mmap not supported on this platform")
}
