package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// seqA frame 1: ATG AAA TAG CCC ATG CCC GGG TAA, ORFs at 1 (9 nt) and 13 (12 nt)
const sample = `>gi|1|gb|A.1|seqA first record
ATGAAATAGCCC
ATGCCCGGGTAA
>seqB
AAAA
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.fa")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("tmp: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeWithFlags(t *testing.T) {
	out, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "1", "--repeat_len", "2")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, out,
		"Records count: 2",
		`Max sequences: {"seqA": 24}`,
		`Min sequences: {">seqB": 4}`,
		"id: seqA",
		"Pos: 13",
		"Longest orf len: 12",
		"Most freq repeat: AA",
		"Count: 6",
	)
}

func TestAnalyzePrompts(t *testing.T) {
	out, _, err := execute(t, "1\n2\n", "analyze", writeSample(t))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, out,
		"Enter the reading frame: ",
		"Please enter repeat length(n): ",
		"Pos: 13",
		"Most freq repeat: AA",
	)
}

func TestAnalyzeBadPrompt(t *testing.T) {
	_, _, err := execute(t, "one\n", "analyze", writeSample(t))
	if err == nil || !strings.Contains(err.Error(), "invalid reading frame") {
		t.Fatalf("expected invalid reading frame error, got %v", err)
	}
}

func TestAnalyzeInvalidFrame(t *testing.T) {
	_, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "4", "--repeat_len", "2")
	if err == nil || !strings.Contains(err.Error(), "reading frame must be 1, 2 or 3") {
		t.Fatalf("expected frame error, got %v", err)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	out, _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "nope.fa"), "--frame", "1", "--repeat_len", "2")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if strings.Contains(out, "Records count") {
		t.Fatalf("analysis should not start when the file is missing:\n%s", out)
	}
}

func TestAnalyzeNoORFContinues(t *testing.T) {
	out, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "1", "--id", ">seqB", "--repeat_len", "2")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, out, "No ORF found", "Most freq repeat: AA")
}

func TestAnalyzeNoRepeats(t *testing.T) {
	out, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "1", "--repeat_len", "100")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, out, "No repeats found")
}

func TestAnalyzeEnvConfig(t *testing.T) {
	t.Setenv("GENOME_BUDDY_FRAME", "1")
	t.Setenv("GENOME_BUDDY_REPEAT_LEN", "2")
	out, _, err := execute(t, "", "analyze", writeSample(t))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if strings.Contains(out, "Enter the reading frame") {
		t.Fatalf("frame from environment should skip the prompt:\n%s", out)
	}
	assertContains(t, out, "Pos: 13", "Count: 6")
}

func TestAnalyzeConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "genome_buddy.yaml")
	if err := os.WriteFile(cfg, []byte("frame: 1\nrepeat_len: 2\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("tmp: %v", err)
	}
	out, errOut, err := execute(t, "", "analyze", writeSample(t), "--config", cfg)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, out, "Pos: 13")
	assertContains(t, errOut, "loaded config")
}

func TestBenchmarkFlag(t *testing.T) {
	_, errOut, err := execute(t, "", "analyze", writeSample(t), "--frame", "1", "--repeat_len", "2", "--benchmark")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	assertContains(t, errOut, "benchmark finished")
}

func TestORFFinderGFF(t *testing.T) {
	out, _, err := execute(t, "", "orf_finder", writeSample(t), "--frame", "1", "--outfmt", "gff", "--summary")
	if err != nil {
		t.Fatalf("orf_finder: %v", err)
	}
	assertContains(t, out,
		"##gff-version 3",
		"seqA\tGenomeBuddy\tORF\t1\t9\t",
		"seqA\tGenomeBuddy\tORF\t13\t24\t",
		"Total ORFs: 2",
		"Longest ORF: 12 bp (seqA:13-24)",
	)
}

func TestORFFinderAllFramesToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "orfs.tsv")
	if _, _, err := execute(t, "", "orf_finder", writeSample(t), "--out_file", outFile); err != nil {
		t.Fatalf("orf_finder: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 ORFs, got %q", lines)
	}
}

func TestORFFinderBadFormat(t *testing.T) {
	if _, _, err := execute(t, "", "orf_finder", writeSample(t), "--outfmt", "bed"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestKmerAnalyzer(t *testing.T) {
	out, _, err := execute(t, "", "kmer_analyzer", writeSample(t), "--repeat_len", "2", "--top", "1")
	if err != nil {
		t.Fatalf("kmer_analyzer: %v", err)
	}
	assertContains(t, out, "K-mer\tCount\tRelative_Freq(%)", "AA\t6\t28.57", "Most freq repeat: AA")
	if strings.Contains(out, "CC\t4") {
		t.Fatalf("--top 1 should print a single row:\n%s", out)
	}
}

func TestFastaOverviewPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "lengths.svg")
	out, _, err := execute(t, "", "fasta_overview", writeSample(t), "--plot", plot)
	if err != nil {
		t.Fatalf("fasta_overview: %v", err)
	}
	assertContains(t, out, "Records count: 2", `Max sequences: {"seqA": 24}`)
	data, err := os.ReadFile(plot)
	if err != nil {
		t.Fatalf("read plot: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Fatalf("plot is not an SVG document")
	}
}

func TestCheckAndVersion(t *testing.T) {
	out, _, err := execute(t, "", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	assertContains(t, out, "Successfully running Genome Buddy!")

	out, _, err = execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	assertContains(t, out, "ORF Finder:", "Kmer Analyzer:", "\tSanity Check:\t\t", "Random DNA Gen:")
}

func TestRanDNAGenFeedsAnalyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.fa")
	if _, _, err := execute(t, "", "ran_dna_gen", "--count", "4", "--min_len", "50", "--max_len", "80", "--seed", "9", "--out_file", path); err != nil {
		t.Fatalf("ran_dna_gen: %v", err)
	}
	out, _, err := execute(t, "", "fasta_overview", path)
	if err != nil {
		t.Fatalf("fasta_overview: %v", err)
	}
	assertContains(t, out, "Records count: 4")
}

func TestRanDNAGenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.fa")
	if _, _, err := execute(t, "", "ran_dna_gen", "--seed", "1", "--gzip", "--out_file", path); err != nil {
		t.Fatalf("ran_dna_gen: %v", err)
	}
	out, _, err := execute(t, "", "kmer_analyzer", path+".gz", "--repeat_len", "3", "--top", "1")
	if err != nil {
		t.Fatalf("kmer_analyzer: %v", err)
	}
	assertContains(t, out, "Most freq repeat:")
}

func TestRanDNAGenRejectsBias(t *testing.T) {
	if _, _, err := execute(t, "", "ran_dna_gen", "--gc_bias", "2"); err == nil {
		t.Fatalf("expected GC bias error")
	}
}

func TestRanDNAGenRejectsArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero width", []string{"--width", "0"}, "line width must be at least 1"},
		{"negative width", []string{"--width", "-4"}, "line width must be at least 1"},
		{"negative count", []string{"--count", "-1"}, "record count must not be negative"},
		{"negative min length", []string{"--min_len", "-10"}, "sequence lengths must not be negative"},
		{"negative max length", []string{"--min_len", "0", "--max_len", "-1"}, "sequence lengths must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"ran_dna_gen", "--seed", "3"}, tt.args...)
			out, _, err := execute(t, "", args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
			if out != "" {
				t.Fatalf("expected no output, got %q", out)
			}
		})
	}
}

func TestAnalyzeExplicitZeroRepeatLength(t *testing.T) {
	// no stdin: a prompt here would fail with EOF
	out, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "1", "--repeat_len", "0")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if strings.Contains(out, "Please enter repeat length") {
		t.Fatalf("explicit --repeat_len 0 should not prompt:\n%s", out)
	}
	assertContains(t, out, "No repeats found")
}

func TestAnalyzeExplicitZeroFrame(t *testing.T) {
	_, _, err := execute(t, "", "analyze", writeSample(t), "--frame", "0", "--repeat_len", "2")
	if err == nil || !strings.Contains(err.Error(), "reading frame must be 1, 2 or 3") {
		t.Fatalf("expected frame error without prompting, got %v", err)
	}
}

func TestKmerAnalyzerZeroRepeatLengthFromEnv(t *testing.T) {
	t.Setenv("GENOME_BUDDY_REPEAT_LEN", "0")
	out, _, err := execute(t, "", "kmer_analyzer", writeSample(t))
	if err != nil {
		t.Fatalf("kmer_analyzer: %v", err)
	}
	assertContains(t, out, "No repeats found")
}
