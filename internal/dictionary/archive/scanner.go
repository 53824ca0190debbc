// Package archive extracts quiz entries from a Japanese-Chinese dictionary archive.
//
// Archives are read in the MDict source text format: a headword line, the HTML
// definition lines, and a "</>" line closing the record.
package archive

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const (
	recordSeparator = "</>"
	linkPrefix      = "@@@LINK="

	maxLineSize = 4 * 1024 * 1024
)

// Record is one raw archive record. Neither field is guaranteed to be valid UTF-8.
type Record struct {
	Key        []byte
	Definition []byte
}

// IsLink reports whether the record only redirects to another headword.
func (r Record) IsLink() bool {
	return bytes.HasPrefix(bytes.TrimSpace(r.Definition), []byte(linkPrefix))
}

// Scanner reads records one at a time, in the manner of bufio.Scanner.
type Scanner struct {
	lines  *bufio.Scanner
	record Record
	line   int
	err    error
}

func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{lines: lines}
}

// Scan advances to the next record. A trailing record without a separator is still returned.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	var key []byte
	var definition bytes.Buffer
	for s.lines.Scan() {
		s.line++
		line := bytes.TrimRight(s.lines.Bytes(), "\r")
		if key == nil {
			if trimmed := bytes.TrimSpace(line); len(trimmed) == 0 || string(trimmed) == recordSeparator {
				continue
			}
			key = bytes.Clone(line)
			continue
		}
		if string(bytes.TrimSpace(line)) == recordSeparator {
			s.record = Record{Key: key, Definition: definition.Bytes()}
			return true
		}
		if definition.Len() > 0 {
			definition.WriteByte('\n')
		}
		definition.Write(line)
	}
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("line %d: %w", s.line+1, err)
		return false
	}
	if key == nil {
		return false
	}
	s.record = Record{Key: key, Definition: definition.Bytes()}
	return true
}

func (s *Scanner) Record() Record {
	return s.record
}

func (s *Scanner) Err() error {
	return s.err
}
