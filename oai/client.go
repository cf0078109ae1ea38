// Package oai implements a small client for OAI-PMH endpoints. The Open
// Archives Initiative Protocol for Metadata Harvesting (OAI-PMH) is a low-
// barrier mechanism for repository interoperability.
//
// A Client is bound to a single endpoint and turns OAI requests into OAI
// responses. List verbs are exposed as lazy iterators, which follow
// resumption tokens across pages until the list is exhausted.
package oai

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethgrid/pester"
)

// Version of this package.
const Version = "0.1.0"

// UserAgent to use for requests.
var UserAgent = fmt.Sprintf("pystlouisfed/%s (https://github.com/FirmAI-Research/pystlouisfed)", Version)

// HTTPRequestDoer lets us use pester, http.DefaultClient or other HTTP
// client implementations interchangably.
type HTTPRequestDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is bound to a single OAI endpoint and can turn an OAI request into
// an OAI response. The default transport retries with exponential backoff.
type Client struct {
	endpoint string
	doer     HTTPRequestDoer
	log      zerolog.Logger

	// MaxRequests limits the number of HTTP requests a single list
	// iteration may issue. The default of 1024 prevents endless loops due
	// to broken resumptionToken implementations. Zero means no limit.
	MaxRequests int
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the HTTP transport, e.g. with http.DefaultClient or a
// test double.
func WithDoer(doer HTTPRequestDoer) Option {
	return func(c *Client) { c.doer = doer }
}

// WithLogger sets a logger. Requests are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the given endpoint with a resilient HTTP
// transport.
func NewClient(endpoint string, opts ...Option) *Client {
	hc := pester.New()
	hc.Timeout = 60 * time.Second
	hc.MaxRetries = 8
	hc.Backoff = pester.ExponentialBackoff
	c := &Client{
		endpoint:    endpoint,
		doer:        hc,
		log:         zerolog.Nop(),
		MaxRequests: 1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the base URL this client is bound to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Do takes an OAI request and turns it into at most one single OAI response.
// A missing request endpoint defaults to the client endpoint. Protocol
// errors are returned as OAIError.
func (c *Client) Do(req Request) (Response, error) {
	var response Response

	if req.Endpoint == "" {
		req.Endpoint = c.endpoint
	}
	link, err := req.URL()
	if err != nil {
		return response, err
	}

	c.log.Debug().Str("verb", req.Verb).Str("url", link).Msg("oai request")

	hreq, err := http.NewRequest("GET", link, nil)
	if err != nil {
		return response, err
	}
	hreq.Header.Set("User-Agent", UserAgent)
	resp, err := c.doer.Do(hreq)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return response, fmt.Errorf("oai: HTTP %d for %s", resp.StatusCode, link)
	}

	decoder := xml.NewDecoder(resp.Body)
	if err := decoder.Decode(&response); err != nil {
		return response, err
	}
	if response.Error.Code != "" {
		e := response.Error
		return response, OAIError{Code: e.Code, Message: e.Message}
	}

	return response, nil
}

// ListOptions narrow list requests. The zero value requests everything the
// endpoint has in its default format.
type ListOptions struct {
	// Prefix is the metadataPrefix to request.
	Prefix string
	// Set limits results to members of the given setSpec.
	Set string
	// From and Until bound the datestamps of the selected records.
	From  time.Time
	Until time.Time
	// IgnoreDeleted drops records or headers flagged as deleted. Entries
	// without a status flag always pass.
	IgnoreDeleted bool
}

func (c *Client) listRequest(verb string, opts ListOptions) Request {
	return Request{
		Endpoint: c.endpoint,
		Verb:     verb,
		Prefix:   opts.Prefix,
		Set:      opts.Set,
		From:     opts.From,
		Until:    opts.Until,
	}
}

// ListRecords returns a lazy iterator over all matching records.
func (c *Client) ListRecords(opts ListOptions) *RecordIterator {
	return &RecordIterator{
		pages:         pages{client: c, req: c.listRequest("ListRecords", opts)},
		ignoreDeleted: opts.IgnoreDeleted,
	}
}

// ListIdentifiers returns a lazy iterator over the headers of all matching
// records.
func (c *Client) ListIdentifiers(opts ListOptions) *HeaderIterator {
	return &HeaderIterator{
		pages:         pages{client: c, req: c.listRequest("ListIdentifiers", opts)},
		ignoreDeleted: opts.IgnoreDeleted,
	}
}

// ListSets returns a lazy iterator over the set structure of the repository.
func (c *Client) ListSets() *SetIterator {
	return &SetIterator{
		pages: pages{client: c, req: c.listRequest("ListSets", ListOptions{})},
	}
}

// GetRecord fetches a single record in the given format. A missing
// identifier surfaces as an OAIError with code idDoesNotExist.
func (c *Client) GetRecord(identifier, prefix string) (Record, error) {
	resp, err := c.Do(Request{
		Endpoint:   c.endpoint,
		Verb:       "GetRecord",
		Identifier: identifier,
		Prefix:     prefix,
	})
	if err != nil {
		return Record{}, err
	}
	return resp.GetRecord.Record, nil
}

// Identify asks the repository about itself.
func (c *Client) Identify() (Identify, error) {
	resp, err := c.Do(Request{Endpoint: c.endpoint, Verb: "Identify"})
	if err != nil {
		return Identify{}, err
	}
	return resp.Identify, nil
}

// ListMetadataFormats returns all metadata formats the repository supports.
func (c *Client) ListMetadataFormats() ([]MetadataFormat, error) {
	resp, err := c.Do(Request{Endpoint: c.endpoint, Verb: "ListMetadataFormats"})
	if err != nil {
		return nil, err
	}
	return resp.ListMetadataFormats.Formats, nil
}

// Harvest executes a list request and writes the verbatim inner XML of every
// page to the given writer, following resumption tokens until the list is
// exhausted.
func (c *Client) Harvest(req Request, w io.Writer) error {
	if req.Endpoint == "" {
		req.Endpoint = c.endpoint
	}
	for i := 0; ; i++ {
		if c.MaxRequests > 0 && i == c.MaxRequests {
			return ErrTooManyRequests
		}
		resp, err := c.Do(req)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, resp.raw(req.Verb)); err != nil {
			return err
		}
		token := resp.token(req.Verb)
		if token == "" {
			return nil
		}
		req.ResumptionToken = token
	}
}
