package otu

import (
	"fmt"
	"strings"
)

// OTUMapHeader converts the sequence label of an OTU map line to the
// canonical header. The label looks like `barcode=sampleA;001;`.
// The part after the first `=` (up to the next `=`, if any) is taken and
// every `;` is replaced by `.`.
func OTUMapHeader(field string) (string, error) {
	parts := strings.Split(field, "=")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: '%s'", ErrNoBarcode, field)
	}
	res := strings.ReplaceAll(parts[1], ";", ".")
	if res == "" {
		return "", fmt.Errorf("%w: nothing after '=' in '%s'", ErrEmptyLabel, field)
	}
	return res, nil
}

// FastaHeader converts a FASTA header line to the canonical header.
// It must give the same result as OTUMapHeader for the same sequence.
func FastaHeader(line string) (string, error) {
	if !strings.HasPrefix(line, ">") {
		return "", fmt.Errorf("%w: '%s'", ErrNoMarker, line)
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: FASTA header '%s'", ErrEmptyLabel, line)
	}
	return OTUMapHeader(fields[0])
}

// TargetLabel converts the target field of an OTU map line to the
// canonical OTU label: `;` becomes `__`, then trailing line ends and
// underscores are removed.
//
//	OTU_1;unclassified; -> OTU_1__unclassified
func TargetLabel(field string) (string, error) {
	res := strings.ReplaceAll(field, ";", "__")
	res = strings.TrimRight(res, "\r\n")
	res = strings.TrimRight(res, "_")
	if res == "" {
		return "", fmt.Errorf("%w: OTU label '%s'", ErrEmptyLabel, field)
	}
	return res, nil
}

// TaxonLabel converts the OTU identifier of a taxonomy file to the
// canonical OTU label. It uses the same rule as TargetLabel, so taxonomy
// rows can be matched with OTU map targets.
func TaxonLabel(field string) (string, error) {
	return TargetLabel(field)
}
