package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"genome_buddy_go/fasta_overview"
	"genome_buddy_go/kmer_analyzer"
	"genome_buddy_go/orf_finder"
	"genome_buddy_go/utils"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [fasta]",
		Short: "Record count, length extremes, longest ORF and most frequent repeat",
		Long: `Run the full analysis of a FASTA file:
record count, longest and shortest sequences, the longest ORF in one
reading frame and the most frequent repeated k-mer.

The reading frame and repeat length are asked for on stdin unless
--frame and --repeat_len are given.`,
		Example: "  genome_buddy analyze genome.fa --frame 1 --repeat_len 12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				return a.analyze(cmd, args[0])
			})
		},
	}

	analyzeCmd.Flags().Int("frame", 0, "reading frame 1, 2 or 3 (asked on stdin when unset)")
	analyzeCmd.Flags().String("id", "", "only search ORFs in the sequence with this ID")
	analyzeCmd.Flags().Int("repeat_len", 0, "repeat length n (asked on stdin when unset)")
	return analyzeCmd
}

func (a *app) analyze(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	seqs, err := common.LoadFasta(path)
	if err != nil {
		return err
	}
	a.logger.Info("loaded FASTA", "path", path, "records", seqs.Len())

	common.WriteBanner(out, "RECORD COUNT DETAILS")
	fmt.Fprintf(out, "Records count: %d\n", fasta_overview.CountRecords(seqs))

	common.WriteBanner(out, "LONGEST AND SHORTEST SEQ DETAILS")
	longest, shortest := fasta_overview.FindLongestAndShortest(seqs)
	fmt.Fprintf(out, "Max sequences: %s\n", longest)
	fmt.Fprintf(out, "Min sequences: %s\n", shortest)

	p := newPrompter(cmd.InOrStdin(), out)

	frame, err := p.intOrPrompt(a.cfg.ORF.Frame, a.explicit(cmd, "frame"), "Enter the reading frame: ", "reading frame")
	if err != nil {
		return err
	}
	finder, err := orf_finder.NewFinder(frame)
	if err != nil {
		return err
	}
	finder.SeqID = a.cfg.ORF.SeqID
	finder.MinLength = a.cfg.ORF.MinLength

	set := finder.Find(seqs)
	a.logger.Debug("ORF scan finished", "frame", frame, "id", finder.SeqID, "sequences_with_orfs", len(set), "orfs", set.Count())

	common.WriteBanner(out, "LONGEST ORF DETAILS")
	best, err := orf_finder.LongestOverall(orf_finder.LongestPerSequence(set))
	switch {
	case errors.Is(err, orf_finder.ErrNoORF):
		a.logger.Warn("no ORF found", "frame", frame, "id", finder.SeqID)
		fmt.Fprintln(out, "No ORF found")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "id: %s\n", best.SeqID)
		fmt.Fprintf(out, "Pos: %d\n", best.ORF.Start)
		fmt.Fprintf(out, "Longest orf len: %d\n", best.ORF.Length())
	}

	n, err := p.intOrPrompt(a.cfg.Repeats.Length, a.explicit(cmd, "repeat_len"), "Please enter repeat length(n): ", "repeat length")
	if err != nil {
		return err
	}
	if n <= 0 {
		a.logger.Warn("repeat length is not positive", "n", n)
	}

	common.WriteBanner(out, "REPEATS INFO")
	counter := &kmer_analyzer.Counter{N: n}
	repeat, ok := counter.MostFrequentRepeat(seqs)
	if !ok {
		fmt.Fprintln(out, "No repeats found")
		return nil
	}
	fmt.Fprintf(out, "Most freq repeat: %s\n", repeat.Kmer)
	fmt.Fprintf(out, "Count: %d\n", repeat.Count)
	return nil
}
