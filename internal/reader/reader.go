// Package reader loads the whole source file into memory as text
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

var errIsDirectory = errors.New("is a directory")

// ReadError is returned for any failure to load the source. Err is the underlying cause.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("couldn't read file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &ReadError{Path: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &ReadError{Path: fileName, Err: errIsDirectory}
	}

	// открываем файл для чтения
	file, err := os.Open(fileName)
	if err != nil {
		return "", &ReadError{Path: fileName, Err: err}
	}
	defer file.Close()

	return readAll(fileName, file)
}

func readAll(fileName string, r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", &ReadError{Path: fileName, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &ReadError{Path: fileName, Err: ErrInvalidEncoding}
	}
	return string(raw), nil
}
