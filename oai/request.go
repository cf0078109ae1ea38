package oai

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

var (
	ErrNoEndpoint      = errors.New("request: an endpoint is required")
	ErrNoVerb          = errors.New("no verb")
	ErrBadVerb         = errors.New("bad verb")
	ErrTooManyRequests = errors.New("too many requests")
)

// OAIVerbMap (4. Protocol Requests and Responses)
var OAIVerbMap = map[string]bool{
	"Identify":            true,
	"ListIdentifiers":     true,
	"ListSets":            true,
	"ListMetadataFormats": true,
	"ListRecords":         true,
	"GetRecord":           true,
}

// Request can hold any parameter, that you want to send to an OAI server.
type Request struct {
	Endpoint        string
	Verb            string
	From            time.Time
	Until           time.Time
	Set             string
	Prefix          string
	Identifier      string
	ResumptionToken string
}

// URL returns the absolute URL for a given request. Catches basic errors like
// missing endpoint or bad verb.
func (r Request) URL() (s string, err error) {
	if r.Endpoint == "" {
		return s, ErrNoEndpoint
	}
	if r.Verb == "" {
		return s, ErrNoVerb
	}
	if _, found := OAIVerbMap[r.Verb]; !found {
		return s, ErrBadVerb
	}

	values := url.Values{}
	values.Add("verb", r.Verb)

	// Collectively these requests are called list requests (3.5):
	// ListIdentifiers, ListRecords, ListSets
	if r.ResumptionToken != "" {
		// An exclusive argument with a value that is the flow control token.
		values.Add("resumptionToken", r.ResumptionToken)
		return fmt.Sprintf("%s?%s", r.Endpoint, values.Encode()), nil
	}

	maybeAdd := func(k, v string) {
		if v != "" {
			values.Add(k, v)
		}
	}

	if !r.From.IsZero() {
		values.Add("from", r.From.Format("2006-01-02"))
	}
	if !r.Until.IsZero() {
		values.Add("until", r.Until.Format("2006-01-02"))
	}
	maybeAdd("set", r.Set)
	maybeAdd("metadataPrefix", r.Prefix)
	maybeAdd("identifier", r.Identifier)
	return fmt.Sprintf("%s?%s", r.Endpoint, values.Encode()), nil
}
