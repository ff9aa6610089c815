package dashboard

import (
	"sync"
	"time"

	"loanadmin-backend/internal/domain/loan"
	"loanadmin-backend/internal/domain/productloan"
	"loanadmin-backend/internal/domain/user"
)

type Section string

const (
	SectionUsers        Section = "users"
	SectionLoans        Section = "loans"
	SectionProductLoans Section = "product_loans"
)

// SectionState is the per-section loading flag shown next to each tile group.
type SectionState struct {
	Loaded   bool      `json:"loaded"`
	Error    string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
}

// State is everything the dashboard screens render from. Slices are never
// mutated after publication; updates swap in new slices.
type State struct {
	Users        []user.User
	Loans        []loan.Loan
	ProductLoans []productloan.ProductLoan
	Sections     map[Section]SectionState
}

type Store struct {
	mu sync.RWMutex
	st State
}

func NewStore() *Store {
	return &Store{st: State{Sections: map[Section]SectionState{}}}
}

// Snapshot returns the current state. The section map is copied.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.st
	out.Sections = make(map[Section]SectionState, len(s.st.Sections))
	for k, v := range s.st.Sections {
		out.Sections[k] = v
	}
	return out
}

// publish records a section result. On failure the previously loaded rows stay.
func (s *Store) publish(sec Section, err error, at time.Time, apply func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.st.Sections[sec]
	if err != nil {
		s.st.Sections[sec] = SectionState{Loaded: prev.Loaded, Error: err.Error(), LoadedAt: prev.LoadedAt}
		return
	}
	apply(&s.st)
	s.st.Sections[sec] = SectionState{Loaded: true, LoadedAt: at}
}

func (s *Store) SetUsers(rows []user.User, err error, at time.Time) {
	s.publish(SectionUsers, err, at, func(st *State) { st.Users = rows })
}

func (s *Store) SetLoans(rows []loan.Loan, err error, at time.Time) {
	s.publish(SectionLoans, err, at, func(st *State) { st.Loans = rows })
}

func (s *Store) SetProductLoans(rows []productloan.ProductLoan, err error, at time.Time) {
	s.publish(SectionProductLoans, err, at, func(st *State) { st.ProductLoans = rows })
}

func (s *Store) User(id string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.st.Users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

// PatchUser swaps in a patched copy of the cached user list.
func (s *Store) PatchUser(id string, p user.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Users = user.PatchUser(s.st.Users, id, p)
}
