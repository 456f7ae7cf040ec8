package fasta_overview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"genome_buddy_go/utils"
)

// SeqLength pairs a sequence ID with its length.
type SeqLength struct {
	ID     string
	Length int
}

// LengthTable is an ordered ID -> length mapping.
type LengthTable []SeqLength

// Map returns the table as a plain map.
func (t LengthTable) Map() map[string]int {
	m := make(map[string]int, len(t))
	for _, e := range t {
		m[e.ID] = e.Length
	}
	return m
}

func (t LengthTable) String() string {
	parts := make([]string, 0, len(t))
	for _, e := range t {
		parts = append(parts, fmt.Sprintf("%q: %d", e.ID, e.Length))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// median of sorted values; an even count averages the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}

// Define report structure
type Overview struct {
	FileName        string
	TotalSequences  int
	TotalBases      int
	EmptySequences  int
	MeanLength      float64
	MedianLength    float64
	StdDevLength    float64
	Longest         LengthTable
	Shortest        LengthTable
	SequenceIDs     []string
	SequenceLengths []int
	GCContent       map[string]float64
	MeanGCContent   float64
}

// CountRecords returns the number of records in the collection.
func CountRecords(seqs *common.Sequences) int {
	return seqs.Len()
}

// FindLongestAndShortest returns every ID whose sequence has the maximum
// length and every ID whose sequence has the minimum length.
func FindLongestAndShortest(seqs *common.Sequences) (LengthTable, LengthTable) {
	if seqs.Len() == 0 {
		return LengthTable{}, LengthTable{}
	}

	var lengths LengthTable
	seqs.Each(func(id string, seq string) {
		lengths = append(lengths, SeqLength{ID: id, Length: len(seq)})
	})

	maxLen, minLen := lengths[0].Length, lengths[0].Length
	for _, l := range lengths {
		if l.Length > maxLen {
			maxLen = l.Length
		}
		if l.Length < minLen {
			minLen = l.Length
		}
	}

	longest, shortest := LengthTable{}, LengthTable{}
	for _, l := range lengths {
		if l.Length == maxLen {
			longest = append(longest, l)
		}
		if l.Length == minLen {
			shortest = append(shortest, l)
		}
	}
	return longest, shortest
}

func gcPercent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// Summarize computes the descriptive statistics of a collection.
func Summarize(fileName string, seqs *common.Sequences) Overview {
	report := Overview{
		FileName:       fileName,
		TotalSequences: CountRecords(seqs),
		GCContent:      make(map[string]float64),
	}
	report.Longest, report.Shortest = FindLongestAndShortest(seqs)

	var lengths []float64
	var gcValues []float64
	seqs.Each(func(id string, seq string) {
		report.SequenceIDs = append(report.SequenceIDs, id)
		report.SequenceLengths = append(report.SequenceLengths, len(seq))
		report.TotalBases += len(seq)
		lengths = append(lengths, float64(len(seq)))
		if len(seq) == 0 {
			report.EmptySequences++
			return
		}
		gc := gcPercent(seq)
		report.GCContent[id] = gc
		gcValues = append(gcValues, gc)
	})

	if len(lengths) > 0 {
		report.MeanLength = stat.Mean(lengths, nil)
		sorted := make([]float64, len(lengths))
		copy(sorted, lengths)
		sort.Float64s(sorted)
		report.MedianLength = median(sorted)
	}
	if len(lengths) > 1 {
		report.StdDevLength = stat.StdDev(lengths, nil)
	}
	if len(gcValues) > 0 {
		report.MeanGCContent = stat.Mean(gcValues, nil)
	}

	return report
}

// Report Generator
func PrintReport(w io.Writer, report Overview) {
	fmt.Fprintf(w, "FASTA Overview Report: %s\n", report.FileName)
	fmt.Fprintln(w, "------------------------------------------")

	common.WriteBanner(w, "RECORD COUNT DETAILS")
	fmt.Fprintf(w, "Records count: %d\n", report.TotalSequences)
	fmt.Fprintf(w, "Total bases in all sequences: %d\n", report.TotalBases)
	if report.EmptySequences > 0 {
		fmt.Fprintf(w, "Headers with no sequence: %d\n", report.EmptySequences)
	}

	common.WriteBanner(w, "LONGEST AND SHORTEST SEQ DETAILS")
	fmt.Fprintf(w, "Max sequences: %s\n", report.Longest)
	fmt.Fprintf(w, "Min sequences: %s\n", report.Shortest)

	if len(report.SequenceLengths) > 0 {
		fmt.Fprintf(w, "\nSequence length statistics:\n")
		fmt.Fprintf(w, "  Mean:    %.2f bp\n", report.MeanLength)
		fmt.Fprintf(w, "  Median:  %.2f bp\n", report.MedianLength)
		fmt.Fprintf(w, "  Std dev: %.2f bp\n", report.StdDevLength)
	}

	fmt.Fprintf(w, "\nPer-sequence content statistics:\n")
	for i, id := range report.SequenceIDs {
		fmt.Fprintf(w, "  %s: %d bp, GC = %.2f%%\n", id, report.SequenceLengths[i], report.GCContent[id])
	}
	fmt.Fprintf(w, "  Mean GC content: %.2f%%\n", report.MeanGCContent)
}
