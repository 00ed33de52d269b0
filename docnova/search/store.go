// Package search holds the result-state machine behind the invoice list.
// State is an immutable snapshot, transitions are pure functions, and the
// Store fences overlapping searches with a request sequence so only the most
// recently issued search may resolve.
package search

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/model"
)

var logger = logrus.WithField("component", "docnova.search")

const (
	defaultPage = 0
	defaultSize = 20
)

type Pagination struct {
	Page  int
	Size  int
	Total int64
}

// State is one snapshot of the result store. Items and pagination always come
// wholesale from the last successful page, pages are replaced, never merged.
type State struct {
	Items      []model.InvoiceRecord
	Selected   *model.InvoiceRecord
	Loading    bool
	Err        string
	Pagination Pagination
}

func initialState() State {
	return State{Pagination: Pagination{Page: defaultPage, Size: defaultSize}}
}

func start(s State) State {
	s.Loading = true
	s.Err = ""
	return s
}

func succeed(s State, page *model.InvoicePage) State {
	s.Loading = false
	s.Err = ""

	if page == nil {
		s.Items = []model.InvoiceRecord{}
		s.Pagination = Pagination{Page: defaultPage, Size: defaultSize}
		return s
	}

	items := page.Content
	if items == nil {
		items = []model.InvoiceRecord{}
	}
	s.Items = items

	p := Pagination{Page: defaultPage, Size: defaultSize, Total: page.TotalElements}
	if page.Pageable != nil {
		p.Page = page.Pageable.PageNumber
		if page.Pageable.PageSize > 0 {
			p.Size = page.Pageable.PageSize
		}
	}
	s.Pagination = p
	return s
}

func fail(s State, msg string) State {
	s.Loading = false
	s.Err = msg
	return s
}

// Store serializes transitions over the snapshot. Begin hands out a sequence
// number; Resolve and Fail are accepted only for the latest issued one, a
// stale resolution is discarded instead of overwriting newer results.
type Store struct {
	mu    sync.Mutex
	seq   uint64
	state State
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

// Begin moves the store to loading and returns the sequence number the caller
// must present when resolving.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = start(s.state)
	return s.seq
}

// Resolve applies a successful page. Returns false when the sequence is stale
// and the page was dropped.
func (s *Store) Resolve(seq uint64, page *model.InvoicePage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		logger.Debugf("dropping stale search result, seq=%d latest=%d", seq, s.seq)
		return false
	}
	s.state = succeed(s.state, page)
	return true
}

// Fail records the user-facing message. Items and pagination from the prior
// state survive, an error and stale data coexist.
func (s *Store) Fail(seq uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		logger.Debugf("dropping stale search failure, seq=%d latest=%d", seq, s.seq)
		return false
	}
	s.state = fail(s.state, msg)
	return true
}

// Select marks one record as the detail selection. Independent of the search
// lifecycle.
func (s *Store) Select(rec model.InvoiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = &rec
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = nil
}

func (s *Store) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
