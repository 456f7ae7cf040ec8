package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Analyze        = "v1.0.0"
	Benchmark      = "v1.0.1"
	FASTA_Overview = "v3.0.0"
	Kmer_Analyzer  = "v2.0.0"
	ORF_Finder     = "v2.0.0"
	Ran_DNA_Gen    = "v1.1.0"
	Sanity_check   = "v1.0.0"
)
