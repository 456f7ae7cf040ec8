// Common package contains the FASTA loader and the sequence collection shared by every tool.
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Sequences maps sequence IDs to sequences and remembers the order in which
// IDs were first seen. A later record with a duplicate ID overwrites the
// sequence but keeps the original position.
type Sequences struct {
	ids  []string
	seqs map[string]string
}

// NewSequences returns an empty collection.
func NewSequences() *Sequences {
	return &Sequences{seqs: make(map[string]string)}
}

// Set stores seq under id.
func (s *Sequences) Set(id string, seq string) {
	if _, ok := s.seqs[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.seqs[id] = seq
}

// Get returns the sequence stored under id.
func (s *Sequences) Get(id string) (string, bool) {
	seq, ok := s.seqs[id]
	return seq, ok
}

// Len returns the number of records.
func (s *Sequences) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the IDs in first-seen order.
func (s *Sequences) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Each calls fn for every record in first-seen order.
func (s *Sequences) Each(fn func(id string, seq string)) {
	for _, id := range s.ids {
		fn(id, s.seqs[id])
	}
}

// ParseSeqID extracts the record ID from a header line: the last
// '|'-delimited field, cut at the first whitespace. The header is split as
// is, so an ID without any '|' keeps its leading '>'.
func ParseSeqID(header string) string {
	fields := strings.Split(header, "|")
	tokens := strings.Fields(fields[len(fields)-1])
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// ReadFasta parses FASTA text into a Sequences collection.
//
// Sequence lines that appear before the first header are kept and end up in
// the first record. Input without any header produces a single record with
// an empty ID.
func ReadFasta(r io.Reader) (*Sequences, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	sequences := NewSequences()
	var currentID string
	var buffer strings.Builder
	seenHeader := false

	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if strings.HasPrefix(line, ">") {
			if !seenHeader {
				seenHeader = true
				currentID = ParseSeqID(line)
				continue
			}
			sequences.Set(currentID, buffer.String())
			currentID = ParseSeqID(line)
			buffer.Reset()
		} else {
			buffer.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	sequences.Set(currentID, buffer.String())

	return sequences, nil
}

// OpenFileOrGzip opens a plain or gzip-compressed file. Compression is
// detected from the gzip magic number, not the file extension.
func OpenFileOrGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}
	if n < 2 || buf[0] != 0x1F || buf[1] != 0x8B {
		return f, nil
	}

	gr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip reader: %w", err)
	}
	return &gzipFile{Reader: gr, file: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// LoadFasta reads the FASTA file at path.
func LoadFasta(path string) (*Sequences, error) {
	rc, err := OpenFileOrGzip(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seqs, err := ReadFasta(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return seqs, nil
}
