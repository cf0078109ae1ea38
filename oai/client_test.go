package oai

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const responseHead = `<?xml version="1.0" encoding="UTF-8"?>
<OAI-PMH xmlns="http://www.openarchives.org/OAI/2.0/">
<responseDate>2023-01-01T00:00:00Z</responseDate>`

func oaiErrorXML(code, message string) string {
	return fmt.Sprintf(`%s<request>https://example.org/oai</request>
<error code=%q>%s</error>
</OAI-PMH>`, responseHead, code, message)
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, WithDoer(srv.Client()))
}

func TestDoOAIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, oaiErrorXML("idDoesNotExist", "id does not exist"))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.Do(Request{Verb: "GetRecord", Identifier: "x", Prefix: "mods"})
	var oaiErr OAIError
	if !errors.As(err, &oaiErr) {
		t.Fatalf("got %v, want OAIError", err)
	}
	if oaiErr.Code != "idDoesNotExist" {
		t.Errorf("got %v, want idDoesNotExist", oaiErr.Code)
	}
}

func TestDoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.Do(Request{Verb: "Identify"})
	if err == nil || !strings.Contains(err.Error(), "HTTP 500") {
		t.Fatalf("got %v, want HTTP 500 error", err)
	}
}

func TestDoMalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<OAI-PMH><unclosed>")
	}))
	defer srv.Close()

	client := newTestClient(srv)
	if _, err := client.Do(Request{Verb: "Identify"}); err == nil {
		t.Fatal("got nil, want XML decode error")
	}
}

func TestDoUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("got %v, want %v", got, UserAgent)
		}
		fmt.Fprintf(w, `%s<request verb="Identify">x</request>
<Identify><repositoryName>FRASER</repositoryName></Identify></OAI-PMH>`, responseHead)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	identify, err := client.Identify()
	if err != nil {
		t.Fatalf("Identify() failed: %v", err)
	}
	if identify.Name != "FRASER" {
		t.Errorf("got %v, want FRASER", identify.Name)
	}
}

func TestGetRecord(t *testing.T) {
	const id = "oai:fraser.stlouisfed.org:title:176"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("verb") != "GetRecord" {
			t.Errorf("verb got %v, want GetRecord", q.Get("verb"))
		}
		if q.Get("metadataPrefix") != "mods" {
			t.Errorf("metadataPrefix got %v, want mods", q.Get("metadataPrefix"))
		}
		if q.Get("identifier") != id {
			t.Errorf("identifier got %v, want %v", q.Get("identifier"), id)
		}
		fmt.Fprintf(w, `%s<request verb="GetRecord">x</request>
<GetRecord>
<record>
<header><identifier>%s</identifier><datestamp>2016-07-08</datestamp><setSpec>title</setSpec></header>
<metadata><mods><titleInfo><title>Annual Report</title></titleInfo></mods></metadata>
</record>
</GetRecord>
</OAI-PMH>`, responseHead, id)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	record, err := client.GetRecord(id, "mods")
	if err != nil {
		t.Fatalf("GetRecord() failed: %v", err)
	}
	if record.Header.Identifier != id {
		t.Errorf("got %v, want %v", record.Header.Identifier, id)
	}
	if !strings.Contains(record.Metadata.Verbatim, "Annual Report") {
		t.Errorf("metadata got %q, want title", record.Metadata.Verbatim)
	}
}

func TestListMetadataFormats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `%s<request verb="ListMetadataFormats">x</request>
<ListMetadataFormats>
<metadataFormat><metadataPrefix>mods</metadataPrefix><schema>http://www.loc.gov/standards/mods/v3/mods-3-5.xsd</schema></metadataFormat>
<metadataFormat><metadataPrefix>oai_dc</metadataPrefix><schema>http://www.openarchives.org/OAI/2.0/oai_dc.xsd</schema></metadataFormat>
</ListMetadataFormats>
</OAI-PMH>`, responseHead)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	formats, err := client.ListMetadataFormats()
	if err != nil {
		t.Fatalf("ListMetadataFormats() failed: %v", err)
	}
	if len(formats) != 2 || formats[0].Prefix != "mods" {
		t.Errorf("got %+v, want mods and oai_dc", formats)
	}
}

func TestHarvest(t *testing.T) {
	pages := map[string]string{
		"": responseHead + `<request verb="ListRecords">x</request>
<ListRecords><record><header><identifier>a</identifier></header></record>
<resumptionToken cursor="0">next</resumptionToken></ListRecords></OAI-PMH>`,
		"next": responseHead + `<request verb="ListRecords">x</request>
<ListRecords><record><header><identifier>b</identifier></header></record>
</ListRecords></OAI-PMH>`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pages[r.URL.Query().Get("resumptionToken")])
	}))
	defer srv.Close()

	client := newTestClient(srv)
	var buf strings.Builder
	if err := client.Harvest(Request{Verb: "ListRecords", Prefix: "mods"}, &buf); err != nil {
		t.Fatalf("Harvest() failed: %v", err)
	}
	out := buf.String()
	for _, id := range []string{"a", "b"} {
		if !strings.Contains(out, fmt.Sprintf("<identifier>%s</identifier>", id)) {
			t.Errorf("output misses record %s: %s", id, out)
		}
	}
}
