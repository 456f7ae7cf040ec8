package orf_finder

// CodonKind classifies a codon window during a reading-frame scan.
type CodonKind int

const (
	SenseCodon   CodonKind = iota // any full codon that neither starts nor stops an ORF
	StartCodon                    // ATG
	StopCodon                     // TAA, TAG, TGA
	PartialCodon                  // trailing window shorter than 3 bases
)

const CodonSize = 3

// Start codon and stop codons of the standard genetic code.
const ATG = "ATG"

var StopCodons = []string{"TAA", "TAG", "TGA"}

var stopCodonSet = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

func (k CodonKind) String() string {
	switch k {
	case StartCodon:
		return "start"
	case StopCodon:
		return "stop"
	case PartialCodon:
		return "partial"
	default:
		return "sense"
	}
}

// ClassifyCodon reports the kind of codon. Matching is case-sensitive.
func ClassifyCodon(codon string) CodonKind {
	switch {
	case len(codon) < CodonSize:
		return PartialCodon
	case codon == ATG:
		return StartCodon
	case stopCodonSet[codon]:
		return StopCodon
	default:
		return SenseCodon
	}
}

// Codons splits seq into the full codons of a reading frame (1, 2 or 3).
// Bases before the frame offset and a trailing partial codon are dropped.
func Codons(seq string, frame int) []string {
	var codons []string
	for i := frame - 1; i >= 0 && i+CodonSize <= len(seq); i += CodonSize {
		codons = append(codons, seq[i:i+CodonSize])
	}
	return codons
}
