package ran_dna_gen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

var (
	ErrGCBias = errors.New("GC bias must be between 0.0 and 1.0")
	ErrCount  = errors.New("record count must not be negative")
	ErrLength = errors.New("sequence lengths must not be negative")
	ErrWidth  = errors.New("line width must be at least 1")
)

// Record is one generated FASTA record.
type Record struct {
	ID  string
	Seq string
}

// Generator produces random DNA from a seeded source, so a seed always
// yields the same sequences.
type Generator struct {
	rng    *rand.Rand
	GCBias float64
}

// NewGenerator returns a Generator with the given seed and GC bias (0.0–1.0).
func NewGenerator(seed int64, gcBias float64) (*Generator, error) {
	if gcBias < 0.0 || gcBias > 1.0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrGCBias, gcBias)
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), GCBias: gcBias}, nil
}

// DNA returns a random sequence of the given length, empty when length
// is not positive.
func (g *Generator) DNA(length int) string {
	if length <= 0 {
		return ""
	}
	cWeight := g.GCBias / 2
	aWeight := (1 - g.GCBias) / 2
	tWeight := aWeight // AT bias

	seq := make([]byte, length)
	for i := range seq {
		r := g.rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return string(seq)
}

// Records returns count records named <prefix>_<n> with lengths drawn
// uniformly from [minLen, maxLen]. A maxLen below minLen is raised to minLen.
func (g *Generator) Records(prefix string, count, minLen, maxLen int) ([]Record, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrCount, count)
	}
	if minLen < 0 || maxLen < 0 {
		return nil, fmt.Errorf("%w: got %d-%d", ErrLength, minLen, maxLen)
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	records := make([]Record, count)
	for i := range records {
		length := minLen + g.rng.Intn(maxLen-minLen+1)
		records[i] = Record{ID: fmt.Sprintf("%s_%d", prefix, i+1), Seq: g.DNA(length)}
	}
	return records, nil
}

// WrapFasta wraps seq every width characters for FASTA formatting. A width
// below 1 puts the whole sequence on one line.
func WrapFasta(seq string, width int) string {
	if width < 1 {
		width = len(seq)
	}
	if len(seq) == 0 {
		return ""
	}
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// WriteFasta writes records as FASTA with sequence lines of width bases.
func WriteFasta(w io.Writer, records []Record, width int) error {
	if width < 1 {
		return fmt.Errorf("%w: got %d", ErrWidth, width)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s", r.ID, WrapFasta(r.Seq, width)); err != nil {
			return err
		}
	}
	return nil
}
