package oai

import "time"

// Info summarizes a repository: identity, set structure and supported
// metadata formats.
type Info struct {
	Identify Identify         `json:"id"`
	Sets     []Set            `json:"sets,omitempty"`
	Formats  []MetadataFormat `json:"formats,omitempty"`
	Elapsed  float64          `json:"elapsed"`
}

// Info returns information about the repository behind this client. The
// three underlying requests run one after another; the first failure wins.
func (c *Client) Info() (Info, error) {
	start := time.Now()
	var info Info
	var err error

	if info.Identify, err = c.Identify(); err != nil {
		return info, err
	}
	it := c.ListSets()
	for it.Next() {
		info.Sets = append(info.Sets, it.Set())
	}
	if err := it.Err(); err != nil {
		return info, err
	}
	if info.Formats, err = c.ListMetadataFormats(); err != nil {
		return info, err
	}

	info.Elapsed = time.Since(start).Seconds()
	return info, nil
}
