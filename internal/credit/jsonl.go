package credit

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
)

// MaxLineCapacity is the maximum buffer size for reading one record line (1MB).
const MaxLineCapacity = 1024 * 1024

// ReadAll reads every record from a JSONL credit file.
// A missing or unreadable file yields an *IOError; a malformed line yields a
// *FormatError. No records are returned on failure.
func ReadAll(path string, categories []string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := Decode(f, categories)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
			return nil, fe
		}
		var ie *IOError
		if errors.As(err, &ie) {
			ie.Path = path
			return nil, ie
		}
		return nil, err
	}
	return records, nil
}

// Decode reads JSONL records from r. Empty lines are skipped.
func Decode(r io.Reader, categories []string) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	// Increase buffer size for long lines
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, MaxLineCapacity)

	var records []Record
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := ParseRecord(line, categories)
		if err != nil {
			return nil, &FormatError{Line: lineNum, Err: err}
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNum + 1, Err: err}
		}
		return nil, &IOError{Err: err}
	}

	return records, nil
}
