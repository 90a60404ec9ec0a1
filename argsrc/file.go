package argsrc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FileSource reads one token per line, incrementally, without buffering
// the whole file.
type FileSource struct {
	file    *os.File
	scanner *bufio.Scanner
	err     error
}

// Open returns a FileSource over path, with "-" meaning standard input.
// Callers should Close it once classification is done.
func Open(path string) (*FileSource, error) {
	if path == "-" {
		return &FileSource{scanner: newScanner(os.Stdin)}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open args file: %w", err)
	}
	return &FileSource{file: file, scanner: newScanner(file)}, nil
}

func newScanner(file *os.File) *bufio.Scanner {
	sc := bufio.NewScanner(file)
	// Allow for unusually long tokens.
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return sc
}

func (f *FileSource) Next() (string, bool) {
	if f.err != nil {
		return "", false
	}
	if !f.scanner.Scan() {
		f.err = f.scanner.Err()
		return "", false
	}
	// Scanner only strips the newline; CRLF-terminated files would
	// otherwise leak a trailing \r into every token.
	return strings.TrimSuffix(f.scanner.Text(), "\r"), true
}

func (f *FileSource) Err() error {
	return f.err
}

// Close closes the underlying file. Standard input is left open.
func (f *FileSource) Close() error {
	if f.file != nil {
		return f.file.Close()
	}
	return nil
}
