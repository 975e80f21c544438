package dispatch

import "encoding/json"

// HandlerFunc is one table entry's implementation.
type HandlerFunc func(state *State, params json.RawMessage) (any, error)

// Entry is one row of the flat name-keyed table: a method name, whether
// it mutates state, and its handler.
type Entry struct {
	Name    string
	Mutates bool
	Handler HandlerFunc
}

// Dispatcher routes incoming method names to their handlers against a
// single State container.
type Dispatcher struct {
	state *State
	table map[string]Entry
}

// New builds a Dispatcher with every operation wired into the table.
func New() *Dispatcher {
	d := &Dispatcher{state: NewState(), table: make(map[string]Entry)}
	for _, e := range []Entry{
		{Name: "initialize", Mutates: true, Handler: handleInitialize},
		{Name: "initialized", Mutates: true, Handler: handleInitialized},
		{Name: "shutdown", Mutates: true, Handler: handleShutdown},

		{Name: "textDocument/didOpen", Mutates: true, Handler: handleDidOpen},
		{Name: "textDocument/didChange", Mutates: true, Handler: handleDidChange},
		{Name: "textDocument/didClose", Mutates: true, Handler: handleDidClose},

		{Name: "textDocument/documentSymbol", Handler: handleDocumentSymbol},
		{Name: "textDocument/diagnostic", Handler: handleDiagnostic},
		{Name: "textDocument/hover", Handler: handleHover},
		{Name: "textDocument/completion", Handler: handleCompletion},
		{Name: "workspace/symbol", Handler: handleWorkspaceSymbol},

		{Name: "textDocument/definition", Handler: handleDefinition},
		{Name: "textDocument/references", Handler: handleReferences},
		{Name: "textDocument/rename", Handler: handleRename},
		{Name: "textDocument/prepareRename", Handler: handlePrepareRename},

		{Name: "logos/getTodoItems", Handler: handleGetTodoItems},
		{Name: "logos/getAllTodoItems", Handler: handleGetAllTodoItems},
		{Name: "logos/getTodoStats", Handler: handleGetTodoStats},
		{Name: "logos/getUnusedSymbols", Handler: handleGetUnusedSymbols},
		{Name: "logos/getFileRelations", Handler: handleGetFileRelations},

		{Name: "logos/getRefactorActions", Handler: handleGetRefactorActions},
		{Name: "logos/extractVariable", Handler: handleExtractVariable},
		{Name: "logos/extractMethod", Handler: handleExtractMethod},
		{Name: "logos/canSafeDelete", Handler: handleCanSafeDelete},
		{Name: "logos/safeDelete", Handler: handleSafeDelete},
	} {
		d.table[e.Name] = e
	}
	return d
}

// Dispatch routes method against the table, enforcing the initialize-first
// lifecycle rule before anything else.
func (d *Dispatcher) Dispatch(method string, params json.RawMessage) (any, error) {
	if method != "initialize" && !d.state.Initialized {
		return nil, notInitialized()
	}
	entry, ok := d.table[method]
	if !ok {
		return nil, methodNotFound(method)
	}
	return entry.Handler(d.state, params)
}

// State exposes the dispatcher's state container, e.g. for the embedded
// front-end's synchronous entry points which bypass JSON-RPC framing
// entirely but still need initialize/didOpen semantics.
func (d *Dispatcher) State() *State { return d.state }
