package kmer_analyzer

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"genome_buddy_go/utils"
)

// RepeatTable is an ordered k-mer -> count mapping. Iteration follows the
// order in which k-mers were first added.
type RepeatTable struct {
	kmers  []string
	counts map[string]int
}

func NewRepeatTable() *RepeatTable {
	return &RepeatTable{counts: make(map[string]int)}
}

// Add increases the count of kmer by n.
func (t *RepeatTable) Add(kmer string, n int) {
	if _, ok := t.counts[kmer]; !ok {
		t.kmers = append(t.kmers, kmer)
	}
	t.counts[kmer] += n
}

// Count returns the count of kmer, 0 when absent.
func (t *RepeatTable) Count(kmer string) int {
	return t.counts[kmer]
}

func (t *RepeatTable) Len() int {
	return len(t.kmers)
}

// Total returns the sum of all counts.
func (t *RepeatTable) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Each calls fn for every k-mer in first-seen order.
func (t *RepeatTable) Each(fn func(kmer string, count int)) {
	for _, k := range t.kmers {
		fn(k, t.counts[k])
	}
}

// Map returns the table as a plain map.
func (t *RepeatTable) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, c := range t.counts {
		m[k] = c
	}
	return m
}

// Repeat is a k-mer with its occurrence count.
type Repeat struct {
	Kmer  string
	Count int
}

// MostFrequent returns the k-mer with the highest count. Ties go to the
// k-mer seen first. ok is false when the table is empty.
func (t *RepeatTable) MostFrequent() (Repeat, bool) {
	var best Repeat
	found := false
	t.Each(func(kmer string, count int) {
		if !found || count > best.Count {
			best = Repeat{Kmer: kmer, Count: count}
			found = true
		}
	})
	return best, found
}

// Ranked returns the repeats sorted by count, highest first. Equal counts
// keep first-seen order.
func (t *RepeatTable) Ranked() []Repeat {
	ranked := make([]Repeat, 0, len(t.kmers))
	t.Each(func(kmer string, count int) {
		ranked = append(ranked, Repeat{Kmer: kmer, Count: count})
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Counter counts repeated k-mers of length N. A non-positive N counts
// nothing.
type Counter struct {
	N int
}

// CountKmers counts every k-mer of length N in seq. A sequence shorter than
// N has no k-mers.
func (c *Counter) CountKmers(seq string) *RepeatTable {
	counts := NewRepeatTable()
	if c.N <= 0 {
		return counts
	}
	for i := 0; i+c.N <= len(seq); i++ { // slide a window of size N across the sequence
		counts.Add(seq[i:i+c.N], 1)
	}
	return counts
}

// CountRepeats returns the k-mers of seq that occur more than once.
func (c *Counter) CountRepeats(seq string) *RepeatTable {
	repeats := NewRepeatTable()
	c.CountKmers(seq).Each(func(kmer string, count int) {
		if count > 1 {
			repeats.Add(kmer, count)
		}
	})
	return repeats
}

// Aggregate folds the per-sequence repeat tables of every sequence into one
// table by summing counts.
func (c *Counter) Aggregate(seqs *common.Sequences) *RepeatTable {
	total := NewRepeatTable()
	seqs.Each(func(id string, seq string) {
		c.CountRepeats(seq).Each(total.Add)
	})
	return total
}

// MostFrequentRepeat returns the repeat with the highest total count across
// all sequences. ok is false when no repeat was found.
func (c *Counter) MostFrequentRepeat(seqs *common.Sequences) (Repeat, bool) {
	return c.Aggregate(seqs).MostFrequent()
}

// WriteTable writes the top repeats of table as TSV with relative
// frequencies. top <= 0 writes every repeat.
func WriteTable(w io.Writer, table *RepeatTable, top int) error {
	writer := bufio.NewWriter(w)
	total := table.Total()

	fmt.Fprintln(writer, "K-mer\tCount\tRelative_Freq(%)")
	for i, r := range table.Ranked() {
		if top > 0 && i >= top {
			break
		}
		pct := 0.0
		if total > 0 {
			pct = float64(r.Count) / float64(total) * 100
		}
		fmt.Fprintf(writer, "%s\t%d\t%.2f\n", r.Kmer, r.Count, pct)
	}
	return writer.Flush()
}
