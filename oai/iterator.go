package oai

// pages fetches one list page after another, following resumption tokens.
// All pagination state lives here; iterators only drain the current page.
type pages struct {
	client   *Client
	req      Request
	token    string
	started  bool
	done     bool
	requests int
}

// next fetches the next page, or returns done when the token chain ended.
func (p *pages) next() (Response, bool, error) {
	if p.done {
		return Response{}, false, nil
	}
	req := p.req
	if p.started {
		req.ResumptionToken = p.token
	}
	if max := p.client.MaxRequests; max > 0 && p.requests >= max {
		return Response{}, false, ErrTooManyRequests
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Response{}, false, err
	}
	p.requests++
	p.started = true
	p.token = resp.token(p.req.Verb)
	if p.token == "" {
		p.done = true
	}
	return resp, true, nil
}

// RecordIterator lazily walks the records of a ListRecords request. It is
// not restartable; create a new one to iterate again.
type RecordIterator struct {
	pages         pages
	ignoreDeleted bool
	buf           []Record
	cur           Record
	err           error
}

// Next advances to the next record, fetching pages as needed. It returns
// false when the list is exhausted or an error occurred.
func (it *RecordIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		for len(it.buf) > 0 {
			rec := it.buf[0]
			it.buf = it.buf[1:]
			if it.ignoreDeleted && rec.Header.Deleted() {
				continue
			}
			it.cur = rec
			return true
		}
		resp, ok, err := it.pages.next()
		if err != nil {
			it.err = err
			return false
		}
		if !ok {
			return false
		}
		it.buf = resp.ListRecords.Records
	}
}

// Record returns the current record. Only valid after a call to Next
// returned true.
func (it *RecordIterator) Record() Record {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *RecordIterator) Err() error {
	return it.err
}

// HeaderIterator lazily walks the headers of a ListIdentifiers request.
type HeaderIterator struct {
	pages         pages
	ignoreDeleted bool
	buf           []Header
	cur           Header
	err           error
}

// Next advances to the next header, fetching pages as needed.
func (it *HeaderIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		for len(it.buf) > 0 {
			hdr := it.buf[0]
			it.buf = it.buf[1:]
			if it.ignoreDeleted && hdr.Deleted() {
				continue
			}
			it.cur = hdr
			return true
		}
		resp, ok, err := it.pages.next()
		if err != nil {
			it.err = err
			return false
		}
		if !ok {
			return false
		}
		it.buf = resp.ListIdentifiers.Headers
	}
}

// Header returns the current header. Only valid after a call to Next
// returned true.
func (it *HeaderIterator) Header() Header {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *HeaderIterator) Err() error {
	return it.err
}

// SetIterator lazily walks the set structure of a repository.
type SetIterator struct {
	pages pages
	buf   []Set
	cur   Set
	err   error
}

// Next advances to the next set, fetching pages as needed.
func (it *SetIterator) Next() bool {
	if it.err != nil {
		return false
	}
	for {
		for len(it.buf) > 0 {
			it.cur = it.buf[0]
			it.buf = it.buf[1:]
			return true
		}
		resp, ok, err := it.pages.next()
		if err != nil {
			it.err = err
			return false
		}
		if !ok {
			return false
		}
		it.buf = resp.ListSets.Sets
	}
}

// Set returns the current set. Only valid after a call to Next returned
// true.
func (it *SetIterator) Set() Set {
	return it.cur
}

// Err returns the first error encountered during iteration.
func (it *SetIterator) Err() error {
	return it.err
}
