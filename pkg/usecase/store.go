package usecase

import (
	"sync"

	"github.com/secmon-lab/chatdesk/pkg/domain/model"
)

// Action is one event applied to the dashboard view state
type Action interface {
	action()
}

// FetchStarted marks the dispatch of refresh number Seq
type FetchStarted struct {
	Seq uint64
}

// FetchSettled carries the joined outcome of refresh number Seq. When Err
// is set, Logs and Stats are ignored.
type FetchSettled struct {
	Seq   uint64
	Logs  []model.ChatLog
	Stats *model.LogStats
	Err   error
}

// FiltersPatched applies a user edit to the filters
type FiltersPatched struct {
	Patch model.FilterPatch
}

// FiltersToggled flips the visibility of the filter panel
type FiltersToggled struct{}

func (FetchStarted) action()   {}
func (FetchSettled) action()   {}
func (FiltersPatched) action() {}
func (FiltersToggled) action() {}

type storeState struct {
	view      model.ViewState
	latestSeq uint64
}

// reduce returns the state after a and whether a had any effect
func reduce(s storeState, a Action) (storeState, bool) {
	switch a := a.(type) {
	case FetchStarted:
		if a.Seq <= s.latestSeq {
			return s, false
		}
		s.latestSeq = a.Seq
		s.view.Loading = true
		return s, true

	case FetchSettled:
		if a.Seq != s.latestSeq {
			return s, false
		}
		if a.Err == nil {
			s.view.Logs = model.CopyLogs(a.Logs)
			if s.view.Logs == nil {
				s.view.Logs = []model.ChatLog{}
			}
			s.view.Stats = a.Stats
		}
		s.view.Loading = false
		return s, true

	case FiltersPatched:
		if a.Patch.IsEmpty() {
			return s, false
		}
		s.view.Filters = model.ApplyFilter(s.view.Filters, a.Patch)
		return s, true

	case FiltersToggled:
		s.view.ShowFilters = !s.view.ShowFilters
		return s, true
	}

	return s, false
}

// Store is the single owner of a dashboard's view state. All mutation
// goes through Dispatch and is serialized by the store's lock.
type Store struct {
	mu        sync.Mutex
	state     storeState
	listeners map[int]func(model.ViewState)
	nextID    int
}

func NewStore() *Store {
	return NewStoreWithFilters(model.DefaultLogFilters())
}

// NewStoreWithFilters returns a store whose first refresh uses filters
func NewStoreWithFilters(filters model.LogFilters) *Store {
	view := model.NewViewState()
	view.Filters = filters
	return &Store{
		state:     storeState{view: view},
		listeners: make(map[int]func(model.ViewState)),
	}
}

// State returns a snapshot of the current view state
func (s *Store) State() model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.view.Clone()
}

// Dispatch applies a and reports whether it changed the state. Stale
// settle events are dropped and reported as false.
func (s *Store) Dispatch(a Action) bool {
	s.mu.Lock()
	next, changed := reduce(s.state, a)
	s.state = next
	snapshot, listeners := s.snapshotLocked(changed)
	s.mu.Unlock()

	notify(listeners, snapshot)
	return changed
}

// PatchFilters applies patch and returns the resulting filters. The result
// is validated against the filters current under the lock; an invalid
// result is returned as an error and leaves the state unchanged.
func (s *Store) PatchFilters(patch model.FilterPatch) (model.LogFilters, error) {
	s.mu.Lock()
	next := model.ApplyFilter(s.state.view.Filters, patch)
	if err := next.Validate(); err != nil {
		current := s.state.view.Clone().Filters
		s.mu.Unlock()
		return current, err
	}

	var changed bool
	s.state, changed = reduce(s.state, FiltersPatched{Patch: patch})
	filters := s.state.view.Clone().Filters
	snapshot, listeners := s.snapshotLocked(changed)
	s.mu.Unlock()

	notify(listeners, snapshot)
	return filters, nil
}

// BeginFetch allocates the next refresh sequence number, marks the view as
// loading and returns the filters that refresh must use.
func (s *Store) BeginFetch() (uint64, model.LogFilters) {
	s.mu.Lock()
	seq := s.state.latestSeq + 1
	s.state, _ = reduce(s.state, FetchStarted{Seq: seq})
	filters := s.state.view.Clone().Filters
	snapshot, listeners := s.snapshotLocked(true)
	s.mu.Unlock()

	notify(listeners, snapshot)
	return seq, filters
}

// Subscribe registers fn to receive a snapshot after every effective
// action. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(model.ViewState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) snapshotLocked(changed bool) (model.ViewState, []func(model.ViewState)) {
	if !changed || len(s.listeners) == 0 {
		return model.ViewState{}, nil
	}
	listeners := make([]func(model.ViewState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	return s.state.view.Clone(), listeners
}

func notify(listeners []func(model.ViewState), snapshot model.ViewState) {
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}
