package editor

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Store loads and saves document text.
type Store interface {
	// Load returns the lines of the file at path, without line endings.
	Load(path string) ([][]byte, error)
	// Save replaces the file at path with data and returns the bytes written.
	Save(path string, data []byte) (int, error)
}

// FileStore is the Store backed by the local filesystem.
type FileStore struct{}

func (FileStore) Load(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

// readLines splits r on '\n', dropping trailing '\r' and '\n' from each line.
func readLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (FileStore) Save(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, err
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
