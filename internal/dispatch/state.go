package dispatch

import (
	"sync"

	"github.com/logos-lang/logos-go/internal/document"
	"github.com/logos-lang/logos-go/internal/index"
	"github.com/logos-lang/logos-go/internal/todo"
)

// State is the single logical state container: created at startup,
// dropped at shutdown, owning the open documents and both indexes.
type State struct {
	mu sync.RWMutex

	Documents *document.Store
	Symbols   *index.SymbolIndex
	Todos     *todo.Index

	Initialized   bool
	WorkspaceRoot string
}

// NewState returns an empty, uninitialized state container.
func NewState() *State {
	return &State{
		Documents: document.NewStore(),
		Symbols:   index.NewSymbolIndex(),
		Todos:     todo.NewIndex(),
	}
}

// lockMutating and lockReading implement "mutating operations take
// exclusive access, reads take shared access" at the state-container
// level; the component stores (Documents, Symbols, Todos) each also guard
// their own maps, so this is an outer serialization point for multi-store
// operations like didChange, which touch both Documents and Symbols.
func (s *State) lockMutating()   { s.mu.Lock() }
func (s *State) unlockMutating() { s.mu.Unlock() }
func (s *State) lockReading()    { s.mu.RLock() }
func (s *State) unlockReading()  { s.mu.RUnlock() }
