package stlouisfed

import (
	"github.com/FirmAI-Research/pystlouisfed/oai"
)

// FraserEndpoint is the OAI-PMH endpoint of the FRASER digital library.
const FraserEndpoint = "https://fraser.stlouisfed.org/oai"

// fraserPrefix is the metadata format FRASER serves its title records in,
// the Metadata Object Description Schema.
const fraserPrefix = "mods"

// FRASER is a client for the FRASER digital library of U.S. economic,
// financial, and banking history, particularly the history of the Federal
// Reserve System.
//
// It is a thin veneer over an OAI-PMH connection bound to FraserEndpoint:
// pagination, XML decoding and deleted-record filtering all happen in the
// oai package, and its errors pass through unchanged.
//
// https://fraser.stlouisfed.org/
// https://research.stlouisfed.org/docs/api/fraser/
type FRASER struct {
	conn *oai.Client
}

// NewFRASER returns a client bound to the FRASER repository. Options are
// forwarded to the underlying OAI connection.
func NewFRASER(opts ...oai.Option) *FRASER {
	return &FRASER{conn: oai.NewClient(FraserEndpoint, opts...)}
}

// ListParams narrow list requests. A nil value requests everything.
type ListParams struct {
	// Set limits results to records belonging to the given setSpec.
	Set string
	// IgnoreDeleted drops records flagged as deleted by the repository.
	IgnoreDeleted bool
}

func (p *ListParams) options() oai.ListOptions {
	opts := oai.ListOptions{Prefix: fraserPrefix}
	if p != nil {
		opts.Set = p.Set
		opts.IgnoreDeleted = p.IgnoreDeleted
	}
	return opts
}

// ListRecords returns title records from the FRASER repository as a lazy
// iterator, requesting multiple pages as needed.
//
// https://research.stlouisfed.org/docs/api/fraser/listRecords.html
func (f *FRASER) ListRecords(params *ListParams) *oai.RecordIterator {
	return f.conn.ListRecords(params.options())
}

// ListSets returns the set structure for records in the FRASER repository.
//
// https://research.stlouisfed.org/docs/api/fraser/listSets.html
func (f *FRASER) ListSets() *oai.SetIterator {
	return f.conn.ListSets()
}

// ListIdentifiers returns headers for records in the FRASER repository.
//
// https://research.stlouisfed.org/docs/api/fraser/listIdentifiers.html
func (f *FRASER) ListIdentifiers(params *ListParams) *oai.HeaderIterator {
	return f.conn.ListIdentifiers(params.options())
}

// GetRecord returns a single record from the FRASER repository. An unknown
// identifier surfaces as an oai.OAIError with code idDoesNotExist.
//
// https://research.stlouisfed.org/docs/api/fraser/getRecord.html
func (f *FRASER) GetRecord(identifier string) (oai.Record, error) {
	return f.conn.GetRecord(identifier, fraserPrefix)
}

// Identify returns information about the FRASER repository itself.
func (f *FRASER) Identify() (oai.Identify, error) {
	return f.conn.Identify()
}

// ListMetadataFormats returns the metadata formats FRASER supports.
func (f *FRASER) ListMetadataFormats() ([]oai.MetadataFormat, error) {
	return f.conn.ListMetadataFormats()
}
