package oai

import "fmt"

// OAIError wraps OAI error codes and messages, e.g. idDoesNotExist,
// badResumptionToken or noRecordsMatch.
type OAIError struct {
	Code    string
	Message string
}

// Error to satisfy interface.
func (e OAIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// resumptionToken is part of OAI flow control (3.5)
type resumptionToken struct {
	Value string `xml:",chardata"`
	// A UTCdatetime indicating when the resumptionToken ceases to be valid.
	ExpirationDate string `xml:"expirationDate,attr"`
	// A count of the number of elements of the complete list thus far
	// returned (i.e. cursor starts at 0).
	Cursor string `xml:"cursor,attr"`
	// An integer indicating the cardinality of the complete list. The value
	// of completeListSize may be only an estimate of the actual cardinality
	// of the complete list and may be revised during the list request
	// sequence.
	CompleteListSize string `xml:"completeListSize,attr"`
}

// Header is the main response of ListIdentifiers requests and also
// transmitted in ListRecords and GetRecord.
type Header struct {
	Status     string   `xml:"status,attr" json:"status,omitempty"`
	Identifier string   `xml:"identifier" json:"identifier"`
	Datestamp  string   `xml:"datestamp" json:"datestamp"`
	Sets       []string `xml:"setSpec" json:"sets,omitempty"`
}

// Deleted reports whether the record behind this header has been withdrawn
// from the repository. Headers without a status are never considered deleted.
func (h Header) Deleted() bool {
	return h.Status == "deleted"
}

// Record combines a header with the verbatim metadata payload. The metadata
// XML is kept as-is, no schema is imposed.
type Record struct {
	Header   Header `xml:"header"`
	Metadata struct {
		Verbatim string `xml:",innerxml"`
	} `xml:"metadata"`
	About struct {
		Verbatim string `xml:",innerxml"`
	} `xml:"about"`
}

// Set describes a named subset of the repository.
type Set struct {
	Spec        string `xml:"setSpec" json:"spec,omitempty"`
	Name        string `xml:"setName" json:"name,omitempty"`
	Description string `xml:"setDescription>dc>description" json:"description,omitempty"`
}

// MetadataFormat as returned by ListMetadataFormats.
type MetadataFormat struct {
	Prefix    string `xml:"metadataPrefix" json:"prefix"`
	Schema    string `xml:"schema" json:"schema"`
	Namespace string `xml:"metadataNamespace" json:"namespace,omitempty"`
}

// Identify response.
type Identify struct {
	Name              string `xml:"repositoryName,omitempty" json:"name,omitempty"`
	URL               string `xml:"baseURL,omitempty" json:"url,omitempty"`
	Version           string `xml:"protocolVersion,omitempty" json:"version,omitempty"`
	AdminEmail        string `xml:"adminEmail,omitempty" json:"email,omitempty"`
	EarliestDatestamp string `xml:"earliestDatestamp,omitempty" json:"earliest,omitempty"`
	DeletePolicy      string `xml:"deletedRecord,omitempty" json:"delete,omitempty"`
	Granularity       string `xml:"granularity,omitempty" json:"granularity,omitempty"`
}

// ListIdentifiers response.
type ListIdentifiers struct {
	Raw     string          `xml:",innerxml" json:"-"`
	Headers []Header        `xml:"header"`
	Token   resumptionToken `xml:"resumptionToken"`
}

// ListRecords response.
type ListRecords struct {
	Raw     string          `xml:",innerxml" json:"-"`
	Records []Record        `xml:"record"`
	Token   resumptionToken `xml:"resumptionToken"`
}

// ListSets response.
type ListSets struct {
	Raw   string          `xml:",innerxml" json:"-"`
	Sets  []Set           `xml:"set" json:"set"`
	Token resumptionToken `xml:"resumptionToken"`
}

// ListMetadataFormats response.
type ListMetadataFormats struct {
	Formats []MetadataFormat `xml:"metadataFormat" json:"format"`
}

// GetRecord response.
type GetRecord struct {
	Record Record `xml:"record"`
}

// Response can hold most answers to an request to a OAI server.
type Response struct {
	Date    string `xml:"responseDate"`
	Request struct {
		Verb     string `xml:"verb,attr"`
		Endpoint string `xml:",chardata"`
	} `xml:"request"`
	Error struct {
		Code    string `xml:"code,attr"`
		Message string `xml:",chardata"`
	} `xml:"error"`
	ListIdentifiers     ListIdentifiers     `xml:"ListIdentifiers"`
	ListMetadataFormats ListMetadataFormats `xml:"ListMetadataFormats"`
	ListSets            ListSets            `xml:"ListSets"`
	ListRecords         ListRecords         `xml:"ListRecords"`
	GetRecord           GetRecord           `xml:"GetRecord"`
	Identify            Identify            `xml:"Identify"`
}

// token returns the resumption token of the list section belonging to the
// given verb, if any (3.5 Flow Control).
func (r Response) token(verb string) string {
	switch verb {
	case "ListIdentifiers":
		return r.ListIdentifiers.Token.Value
	case "ListRecords":
		return r.ListRecords.Token.Value
	case "ListSets":
		return r.ListSets.Token.Value
	}
	return ""
}

// raw returns the verbatim inner XML of the list section belonging to the
// given verb.
func (r Response) raw(verb string) string {
	switch verb {
	case "ListIdentifiers":
		return r.ListIdentifiers.Raw
	case "ListRecords":
		return r.ListRecords.Raw
	case "ListSets":
		return r.ListSets.Raw
	}
	return ""
}
