// Package namelist models a paginated list of names loaded from some
// backend, demonstrating category capabilities: every state past the
// initial request carries the names loaded so far, and subscribers can
// filter on the HasContents capability instead of naming each variant.
package namelist

import "github.com/amp-labs/fsm"

// HasContents is the capability satisfied by every state that carries
// loaded names.
var HasContents = fsm.NewCategory("has-contents")

// Name-list categories. All but FullLoadRequested satisfy HasContents.
var (
	FullLoadRequested = fsm.NewCategory("full-load-requested")
	LoadingFullPage   = fsm.NewCategory("loading-full-page", HasContents)
	Loaded            = fsm.NewCategory("loaded", HasContents)
	LoadMoreRequested = fsm.NewCategory("load-more-requested", HasContents)
	LoadingMore       = fsm.NewCategory("loading-more", HasContents)
	ErrorLoading      = fsm.NewCategory("error-loading", HasContents)
)

// State is the closed set of name-list states. States carrying names are
// pointer values so that each loaded snapshot has its own identity.
type State interface {
	fsm.State
	isNameList()
}

// WithContents is implemented by every state whose category satisfies
// HasContents.
type WithContents interface {
	State
	Contents() []string
}

type contents struct {
	names []string
}

func (c *contents) Contents() []string {
	return c.names
}

func (*contents) isNameList() {}

// Pending is the initial state: a full load has been requested and
// nothing is available yet.
type Pending struct{}

func (Pending) Category() *fsm.Category { return FullLoadRequested }

func (Pending) isNameList() {}

// Loading is a full-page load in flight. Any previously loaded names
// remain visible until it completes.
type Loading struct {
	contents
}

// NewLoading builds a Loading state over the given names.
func NewLoading(names []string) *Loading {
	return &Loading{contents: contents{names: names}}
}

func (*Loading) Category() *fsm.Category { return LoadingFullPage }

// Ready holds a fully loaded page.
type Ready struct {
	contents
}

// NewReady builds a Ready state over the given names.
func NewReady(names []string) *Ready {
	return &Ready{contents: contents{names: names}}
}

func (*Ready) Category() *fsm.Category { return Loaded }

// MoreRequested records that the caller asked for the next page.
type MoreRequested struct {
	contents
}

// NewMoreRequested builds a MoreRequested state over the given names.
func NewMoreRequested(names []string) *MoreRequested {
	return &MoreRequested{contents: contents{names: names}}
}

func (*MoreRequested) Category() *fsm.Category { return LoadMoreRequested }

// FetchingMore is a next-page load in flight.
type FetchingMore struct {
	contents
}

// NewFetchingMore builds a FetchingMore state over the given names.
func NewFetchingMore(names []string) *FetchingMore {
	return &FetchingMore{contents: contents{names: names}}
}

func (*FetchingMore) Category() *fsm.Category { return LoadingMore }

// Failed records a load error alongside whatever was loaded before it.
type Failed struct {
	contents

	Err error
}

// NewFailed builds a Failed state over the given names and error.
func NewFailed(names []string, err error) *Failed {
	return &Failed{contents: contents{names: names}, Err: err}
}

func (*Failed) Category() *fsm.Category { return ErrorLoading }

// NewMachine builds the name-list machine. The final wildcard rule lets a
// caller restart a full load from any state.
func NewMachine(initial State) (*fsm.Machine[State], error) {
	return fsm.NewBuilder[State]("name-list").
		AddTransition(FullLoadRequested, LoadingFullPage).
		AddTransition(FullLoadRequested, ErrorLoading).
		AddTransition(LoadingMore, ErrorLoading).
		AddTransition(LoadingMore, Loaded).
		AddTransition(LoadingFullPage, ErrorLoading).
		AddTransition(LoadingFullPage, Loaded).
		AddTransition(Loaded, LoadMoreRequested).
		AddTransition(LoadMoreRequested, LoadingMore).
		AddTransition(LoadMoreRequested, ErrorLoading).
		AddTransitionFromAnythingTo(FullLoadRequested).
		Build(initial)
}
