//
// Package stlouisfed provides clients for data services of the Federal
// Reserve Bank of St. Louis: the FRASER digital library, which speaks
// OAI-PMH, and the GeoFRED regional data API.
//
// Basic usage:
//
//	fraser := stlouisfed.NewFRASER()
//	it := fraser.ListRecords(nil)
//	for it.Next() {
//		fmt.Println(it.Record().Header.Identifier)
//	}
//	if err := it.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// It comes with a command line tool, called `fraser`, which harvests the
// repository metadata to stdout:
//
//	$ fraser > metadata.xml
//
package stlouisfed

// Version of this module.
const Version = "0.1.0"
