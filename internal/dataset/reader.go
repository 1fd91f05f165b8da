package dataset

import "github.com/BoostMeHQ/boostme-cli/internal/table"

// Reader decodes one container format into a raw table.
type Reader interface {
	CanRead(filename string) bool
	Read(filename string, data []byte) (*table.Table, error)
}

// Options controls how a dataset is decoded.
type Options struct {
	// Delimiter forces the CSV field separator. 0 picks it from the
	// extension: tab for .tsv, comma otherwise.
	Delimiter rune
}

// readers lists the supported container formats in dispatch order.
func readers(opt Options) []Reader {
	return []Reader{
		csvReader{delim: opt.Delimiter},
		parquetReader{},
	}
}
