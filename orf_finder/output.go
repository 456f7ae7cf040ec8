package orf_finder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Output formats accepted by Write.
const (
	FormatTSV   = "tsv"
	FormatGFF   = "gff"
	FormatFasta = "fasta"
)

// Write renders set in the given format.
func Write(w io.Writer, set ORFSet, format string, showSeq bool) error {
	switch format {
	case FormatTSV:
		return WriteTSV(w, set, showSeq)
	case FormatGFF:
		return WriteGFF(w, set)
	case FormatFasta:
		return WriteFasta(w, set)
	default:
		return fmt.Errorf("invalid output format %q (choose tsv, gff or fasta)", format)
	}
}

// WriteTSV writes one tab-separated line per ORF.
func WriteTSV(w io.Writer, set ORFSet, showSeq bool) error {
	writer := bufio.NewWriter(w)
	if showSeq {
		fmt.Fprintln(writer, "SeqID\tStart\tEnd\tLength\tFrame\tSequence")
	} else {
		fmt.Fprintln(writer, "SeqID\tStart\tEnd\tLength\tFrame")
	}
	for _, e := range set {
		for _, o := range e.ORFs {
			if showSeq {
				fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\t%s\n", e.SeqID, o.Start, o.End, o.Length(), o.Frame, o.Sequence)
			} else {
				fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t%d\n", e.SeqID, o.Start, o.End, o.Length(), o.Frame)
			}
		}
	}
	return writer.Flush()
}

// WriteGFF writes the set as GFF3 ORF features on the forward strand.
func WriteGFF(w io.Writer, set ORFSet) error {
	writer := bufio.NewWriter(w)
	writer.WriteString("##gff-version 3\n")

	orfCounter := 1
	for _, e := range set {
		for _, o := range e.ORFs {
			attrs := fmt.Sprintf("ID=orf%d;Length_nt=%d;Length_aa=%d;Frame=%d",
				orfCounter, o.Length(), o.Length()/CodonSize, o.Frame)
			fmt.Fprintf(writer, "%s\tGenomeBuddy\tORF\t%d\t%d\t.\t+\t0\t%s\n",
				e.SeqID, o.Start, o.End, attrs)
			orfCounter++
		}
	}
	return writer.Flush()
}

// WriteFasta writes each ORF as a FASTA record named <seqid>_orf<n>.
func WriteFasta(w io.Writer, set ORFSet) error {
	fw := fasta.NewWriter(w, 60)
	for _, e := range set {
		for i, o := range e.ORFs {
			s := linear.NewSeq(fmt.Sprintf("%s_orf%d", strings.TrimPrefix(e.SeqID, ">"), i+1), alphabet.BytesToLetters([]byte(o.Sequence)), alphabet.DNA)
			s.Desc = fmt.Sprintf("start=%d end=%d frame=%d length=%d", o.Start, o.End, o.Frame, o.Length())
			if _, err := fw.Write(s); err != nil {
				return fmt.Errorf("failed to write ORF %s: %w", s.ID, err)
			}
		}
	}
	return nil
}
