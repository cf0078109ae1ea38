package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	stlouisfed "github.com/FirmAI-Research/pystlouisfed"
	"github.com/FirmAI-Research/pystlouisfed/oai"
	"github.com/rs/zerolog"
)

func main() {

	endpoint := flag.String("endpoint", stlouisfed.FraserEndpoint, "OAI endpoint")
	showRepoInfo := flag.Bool("info", false, "show repository info")
	listSets := flag.Bool("sets", false, "harvest the set structure instead of records")
	listIdentifiers := flag.Bool("identifiers", false, "harvest headers instead of full records")
	identifier := flag.String("id", "", "fetch a single record by identifier")
	set := flag.String("set", "", "OAI set")
	prefix := flag.String("prefix", "mods", "OAI metadataPrefix")
	from := flag.String("from", "", "OAI from (YYYY-MM-DD)")
	until := flag.String("until", "", "OAI until (YYYY-MM-DD)")
	root := flag.String("root", "", "name of artificial root element tag to use")
	showVersion := flag.Bool("v", false, "prints current program version")
	verbose := flag.Bool("verbose", false, "more output")

	flag.Parse()

	if *showVersion {
		fmt.Println(stlouisfed.Version)
		os.Exit(0)
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	client := oai.NewClient(*endpoint, oai.WithLogger(logger))

	if *showRepoInfo {
		info, err := client.Info()
		if err != nil {
			log.Fatal(err)
		}
		b, err := json.Marshal(info)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(b))
		os.Exit(0)
	}

	if *identifier != "" {
		record, err := client.GetRecord(*identifier, *prefix)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(record.Metadata.Verbatim)
		os.Exit(0)
	}

	req := oai.Request{
		Verb:   "ListRecords",
		Prefix: *prefix,
		Set:    *set,
	}
	switch {
	case *listSets:
		req = oai.Request{Verb: "ListSets"}
	case *listIdentifiers:
		req.Verb = "ListIdentifiers"
	}

	if *from != "" {
		var err error
		if req.From, err = time.Parse("2006-01-02", *from); err != nil {
			log.Fatal(err)
		}
	}
	if *until != "" {
		var err error
		if req.Until, err = time.Parse("2006-01-02", *until); err != nil {
			log.Fatal(err)
		}
	}

	if *root != "" {
		fmt.Printf("<%s>", *root)
	}

	if err := harvest(client, req); err != nil {
		log.Fatal(err)
	}

	if *root != "" {
		fmt.Printf("</%s>", *root)
	}
}

// harvest writes all pages for the request to stdout. Date-bounded record
// requests are split into monthly windows to reduce load and to limit the
// damage of errors late in a long harvest.
func harvest(client *oai.Client, req oai.Request) error {
	if req.Verb == "ListSets" || req.From.IsZero() || req.Until.IsZero() {
		return client.Harvest(req, os.Stdout)
	}
	windows, err := oai.Window{From: req.From, Until: req.Until}.Monthly()
	if err != nil {
		return err
	}
	for _, w := range windows {
		r := req
		r.From = w.From
		r.Until = w.Until
		if err := client.Harvest(r, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
