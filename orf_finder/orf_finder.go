package orf_finder

import (
	"errors"
	"fmt"
	"sort"

	"genome_buddy_go/utils"
)

var (
	ErrInvalidFrame = errors.New("reading frame must be 1, 2 or 3")
	ErrNoORF        = errors.New("no ORF found")
)

// ORF is an open reading frame: a start codon through the first in-frame
// stop codon, both included. Start and End are 1-based and inclusive.
type ORF struct {
	Start    int
	End      int
	Frame    int
	Sequence string
}

func (o ORF) Length() int {
	return len(o.Sequence)
}

// SeqORFs holds the ORFs of one sequence in ascending start order.
type SeqORFs struct {
	SeqID string
	ORFs  []ORF
}

// ORFSet is an ordered SeqID -> ORFs mapping. Sequences without ORFs are
// never present.
type ORFSet []SeqORFs

// Count returns the total number of ORFs in the set.
func (s ORFSet) Count() int {
	n := 0
	for _, e := range s {
		n += len(e.ORFs)
	}
	return n
}

// SeqORF ties a single ORF to its sequence.
type SeqORF struct {
	SeqID string
	ORF   ORF
}

// Finder scans sequences for ORFs in one forward reading frame.
//
// The frame is fixed by NewFinder. A Finder built any other way has no
// valid frame and finds nothing.
type Finder struct {
	frame     int    // 1, 2 or 3
	SeqID     string // restrict the scan to this sequence when set
	MinLength int    // drop ORFs shorter than this many nucleotides
}

// NewFinder validates frame and returns a Finder scanning every sequence.
func NewFinder(frame int) (*Finder, error) {
	if frame < 1 || frame > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrame, frame)
	}
	return &Finder{frame: frame}, nil
}

// Frame returns the 1-based reading frame the Finder scans.
func (f *Finder) Frame() int { return f.frame }

// FindInSequence returns the ORFs of seq in ascending start order.
//
// Every in-frame ATG opens its own scan, so ORFs nested inside a longer ORF
// are reported too. A start codon without a downstream in-frame stop codon
// yields nothing.
func (f *Finder) FindInSequence(seq string) []ORF {
	if f.frame < 1 || f.frame > 3 {
		return nil
	}
	var orfs []ORF
	for i := f.frame - 1; i+CodonSize <= len(seq); i += CodonSize {
		if ClassifyCodon(seq[i:i+CodonSize]) != StartCodon {
			continue
		}
		for j := i + CodonSize; j+CodonSize <= len(seq); j += CodonSize {
			if ClassifyCodon(seq[j:j+CodonSize]) != StopCodon {
				continue
			}
			orf := ORF{
				Start:    i + 1,
				End:      j + CodonSize,
				Frame:    f.frame,
				Sequence: seq[i : j+CodonSize],
			}
			if orf.Length() >= f.MinLength {
				orfs = append(orfs, orf)
			}
			break
		}
	}
	return orfs
}

// Find scans every sequence (or only f.SeqID) of the collection.
func (f *Finder) Find(seqs *common.Sequences) ORFSet {
	set := ORFSet{}
	seqs.Each(func(id string, seq string) {
		if f.SeqID != "" && id != f.SeqID {
			return
		}
		if orfs := f.FindInSequence(seq); len(orfs) > 0 {
			set = append(set, SeqORFs{SeqID: id, ORFs: orfs})
		}
	})
	return set
}

// FindFrames scans every frame in frames and merges the ORFs of each
// sequence in ascending start order.
func FindFrames(seqs *common.Sequences, frames []int, seqID string, minLength int) (ORFSet, error) {
	byID := make(map[string][]ORF)
	for _, frame := range frames {
		f, err := NewFinder(frame)
		if err != nil {
			return nil, err
		}
		f.SeqID = seqID
		f.MinLength = minLength
		for _, e := range f.Find(seqs) {
			byID[e.SeqID] = append(byID[e.SeqID], e.ORFs...)
		}
	}

	set := ORFSet{}
	for _, id := range seqs.IDs() {
		orfs, ok := byID[id]
		if !ok {
			continue
		}
		sort.SliceStable(orfs, func(i, j int) bool {
			return orfs[i].Start < orfs[j].Start
		})
		set = append(set, SeqORFs{SeqID: id, ORFs: orfs})
	}
	return set, nil
}

// longest returns the longest ORF of a non-empty slice; the first one wins ties.
func longest(orfs []ORF) ORF {
	best := orfs[0]
	for _, o := range orfs[1:] {
		if o.Length() > best.Length() {
			best = o
		}
	}
	return best
}

// LongestPerSequence reduces each sequence's ORFs to the longest one. On a
// length tie the ORF with the lowest start wins.
func LongestPerSequence(set ORFSet) []SeqORF {
	var out []SeqORF
	for _, e := range set {
		if len(e.ORFs) == 0 {
			continue
		}
		out = append(out, SeqORF{SeqID: e.SeqID, ORF: longest(e.ORFs)})
	}
	return out
}

// LongestOverall returns the globally longest ORF. On a tie the first
// sequence in iteration order wins. It returns ErrNoORF when there is
// nothing to reduce.
func LongestOverall(perSeq []SeqORF) (SeqORF, error) {
	if len(perSeq) == 0 {
		return SeqORF{}, ErrNoORF
	}
	best := perSeq[0]
	for _, c := range perSeq[1:] {
		if c.ORF.Length() > best.ORF.Length() {
			best = c
		}
	}
	return best, nil
}

type SummaryStats struct {
	Total             int
	SequencesWithORFs int
	TotalLength       int
	Longest           SeqORF
}

func (s SummaryStats) MeanLength() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.TotalLength) / float64(s.Total)
}

// Summarize aggregates counts and lengths over a set.
func Summarize(set ORFSet) SummaryStats {
	summary := SummaryStats{SequencesWithORFs: len(set)}
	for _, e := range set {
		for _, o := range e.ORFs {
			summary.Total++
			summary.TotalLength += o.Length()
		}
	}
	if best, err := LongestOverall(LongestPerSequence(set)); err == nil {
		summary.Longest = best
	}
	return summary
}
