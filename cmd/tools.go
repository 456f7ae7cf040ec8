package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"genome_buddy_go/config"
	"genome_buddy_go/fasta_overview"
	"genome_buddy_go/kmer_analyzer"
	"genome_buddy_go/orf_finder"
	"genome_buddy_go/utils"
)

func newFastaOverviewCmd(a *app) *cobra.Command {
	var plotPath string

	overviewCmd := &cobra.Command{
		Use:     "fasta_overview [fasta]",
		Short:   "Summary statistics of a FASTA file",
		Example: "  genome_buddy fasta_overview genome.fa --plot lengths.svg",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				seqs, err := common.LoadFasta(args[0])
				if err != nil {
					return err
				}
				report := fasta_overview.Summarize(args[0], seqs)
				fasta_overview.PrintReport(cmd.OutOrStdout(), report)

				if plotPath == "" {
					return nil
				}
				svg, err := fasta_overview.LengthHistogramSVG(report.SequenceLengths)
				if err != nil {
					return fmt.Errorf("failed to plot lengths: %w", err)
				}
				if err := os.WriteFile(plotPath, []byte(svg), 0o644); err != nil {
					return fmt.Errorf("failed to write plot: %w", err)
				}
				a.logger.Info("wrote length histogram", "path", plotPath)
				return nil
			})
		},
	}

	overviewCmd.Flags().StringVar(&plotPath, "plot", "", "write an SVG histogram of sequence lengths to this file")
	return overviewCmd
}

func newORFFinderCmd(a *app) *cobra.Command {
	var outFile string
	var showSeq, summary bool

	orfCmd := &cobra.Command{
		Use:   "orf_finder [fasta]",
		Short: "Find open reading frames on the forward strand",
		Long: `List every ORF (ATG through the first in-frame TAA, TAG or TGA).
Without --frame all three forward frames are scanned.`,
		Example: "  genome_buddy orf_finder genome.fa --frame 2 --outfmt gff",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				seqs, err := common.LoadFasta(args[0])
				if err != nil {
					return err
				}

				frames := []int{1, 2, 3}
				if a.cfg.ORF.Frame != 0 {
					frames = []int{a.cfg.ORF.Frame}
				}
				set, err := orf_finder.FindFrames(seqs, frames, a.cfg.ORF.SeqID, a.cfg.ORF.MinLength)
				if err != nil {
					return err
				}

				write := func(w io.Writer) error {
					return orf_finder.Write(w, set, a.cfg.ORF.OutFmt, showSeq)
				}
				if outFile == "" {
					err = write(cmd.OutOrStdout())
				} else {
					err = writeFile(outFile, false, write)
				}
				if err != nil {
					return err
				}

				if summary {
					printORFSummary(cmd.OutOrStdout(), orf_finder.Summarize(set))
				}
				return nil
			})
		},
	}

	orfCmd.Flags().Int("frame", 0, "reading frame 1, 2 or 3 (all frames when unset)")
	orfCmd.Flags().String("id", "", "only scan the sequence with this ID")
	orfCmd.Flags().Int("minlen", 0, "minimum ORF length in nucleotides")
	orfCmd.Flags().String("outfmt", orf_finder.FormatTSV, "output format: tsv, gff or fasta")
	orfCmd.Flags().StringVar(&outFile, "out_file", "", "output file (default is stdout)")
	orfCmd.Flags().BoolVar(&showSeq, "showseq", false, "include ORF sequences in tsv output")
	orfCmd.Flags().BoolVar(&summary, "summary", false, "print an ORF summary to stdout")
	return orfCmd
}

func printORFSummary(w io.Writer, summary orf_finder.SummaryStats) {
	common.WriteBanner(w, "ORF SUMMARY")
	fmt.Fprintf(w, "Total ORFs: %d\n", summary.Total)
	fmt.Fprintf(w, "Sequences with ORFs: %d\n", summary.SequencesWithORFs)
	if summary.Total > 0 {
		fmt.Fprintf(w, "Longest ORF: %d bp (%s:%d-%d)\n", summary.Longest.ORF.Length(),
			summary.Longest.SeqID, summary.Longest.ORF.Start, summary.Longest.ORF.End)
	}
	fmt.Fprintf(w, "Average ORF length: %.1f bp\n", summary.MeanLength())
}

func newKmerAnalyzerCmd(a *app) *cobra.Command {
	kmerCmd := &cobra.Command{
		Use:     "kmer_analyzer [fasta]",
		Short:   "Rank repeated k-mers across all sequences",
		Example: "  genome_buddy kmer_analyzer genome.fa --repeat_len 8 --top 20",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func() error {
				seqs, err := common.LoadFasta(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				n, err := newPrompter(cmd.InOrStdin(), out).intOrPrompt(a.cfg.Repeats.Length, a.explicit(cmd, "repeat_len"), "Please enter repeat length(n): ", "repeat length")
				if err != nil {
					return err
				}
				if n <= 0 {
					a.logger.Warn("repeat length is not positive", "n", n)
				}

				table := (&kmer_analyzer.Counter{N: n}).Aggregate(seqs)
				a.logger.Debug("repeat counting finished", "n", n, "distinct_repeats", table.Len())

				repeat, ok := table.MostFrequent()
				if !ok {
					fmt.Fprintln(out, "No repeats found")
					return nil
				}
				if err := kmer_analyzer.WriteTable(out, table, a.cfg.Repeats.Top); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nMost freq repeat: %s\nCount: %d\n", repeat.Kmer, repeat.Count)
				return nil
			})
		},
	}

	kmerCmd.Flags().Int("repeat_len", 0, "repeat length n (asked on stdin when unset)")
	kmerCmd.Flags().Int("top", 10, "number of ranked repeats to print, 0 prints all")
	return kmerCmd
}

// newCheckCmd performs a simple sanity check to ensure genome_buddy is
// running properly printing helpful message and version number.
func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run diagnostic test",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully running Genome Buddy! (%s)\n", config.Main_version)
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information of every tool",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Genome Buddy - Version Information Menu")
			fmt.Fprintln(w, "Central Executable:")
			fmt.Fprintf(w, "\tGenome Buddy:\t\t%s\n", config.Main_version)
			fmt.Fprintf(w, "\nModular tools:\n")
			fmt.Fprintf(w, "\tAnalyze:\t\t%s\n", config.Analyze)
			fmt.Fprintf(w, "\tFASTA Overview:\t\t%s\n", config.FASTA_Overview)
			fmt.Fprintf(w, "\tORF Finder:\t\t%s\n", config.ORF_Finder)
			fmt.Fprintf(w, "\tKmer Analyzer:\t\t%s\n", config.Kmer_Analyzer)
			fmt.Fprintf(w, "\tRandom DNA Gen:\t\t%s\n", config.Ran_DNA_Gen)
			fmt.Fprintf(w, "\tSanity Check:\t\t%s\n", config.Sanity_check)
			fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
		},
	}
}
