// Package tooling exposes the checker to editors. It keeps the open
// documents, checks them on every change and answers position queries
// for the language server.
package tooling

import (
	"fmt"
	"sync"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// Source names the tool in diagnostics
const Source = "enumgen"

// API keeps checked documents, safe for concurrent use
type API struct {
	mu        sync.RWMutex
	documents map[string]*Document
	opts      checker.Options
}

// Document is an open declaration file and its check results
type Document struct {
	URI         string
	Content     string
	Version     int
	Program     *ast.Program
	Diagnostics errors.ErrorList
	Symbols     []*Symbol

	lines []string
}

// Position is a zero-based line and character offset
type Position struct {
	Line      int
	Character int
}

// Range is a half-open span of positions
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether pos falls inside r
func (r Range) Contains(pos Position) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// Severity of a diagnostic
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// Diagnostic is a checker finding mapped to an editor range
type Diagnostic struct {
	Range    Range
	Severity Severity
	Code     string
	Message  string
	Href     string
}

// NewAPI creates an API that checks documents with opts
func NewAPI(opts checker.Options) *API {
	return &API{
		documents: make(map[string]*Document),
		opts:      opts,
	}
}

// Open checks content and stores it under uri, replacing any earlier
// version. Unchanged content only updates the version.
func (a *API) Open(uri, content string, version int) *Document {
	a.mu.RLock()
	old, ok := a.documents[uri]
	a.mu.RUnlock()
	if ok && old.Content == content {
		a.mu.Lock()
		old.Version = version
		a.mu.Unlock()
		return old
	}

	doc := a.check(uri, content, version)

	a.mu.Lock()
	a.documents[uri] = doc
	a.mu.Unlock()
	return doc
}

func (a *API) check(uri, content string, version int) *Document {
	prog, diags := checker.CheckSource(uri, content, a.opts)
	doc := &Document{
		URI:         uri,
		Content:     content,
		Version:     version,
		Program:     prog,
		Diagnostics: diags,
		lines:       splitLines(content),
	}
	doc.Symbols = buildSymbols(doc, a.opts.PrefixConstants)
	return doc
}

// Document returns the stored document for uri
func (a *API) Document(uri string) (*Document, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	doc, ok := a.documents[uri]
	return doc, ok
}

// Close forgets uri
func (a *API) Close(uri string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.documents, uri)
}

// Diagnostics returns the findings for uri
func (a *API) Diagnostics(uri string) ([]Diagnostic, error) {
	doc, ok := a.Document(uri)
	if !ok {
		return nil, fmt.Errorf("document not found: %s", uri)
	}

	out := make([]Diagnostic, 0, len(doc.Diagnostics))
	for _, d := range doc.Diagnostics {
		out = append(out, Diagnostic{
			Range:    doc.wordRange(d.Location),
			Severity: severityOf(d.Severity),
			Code:     string(d.Code),
			Message:  d.Message,
			Href:     d.Documentation,
		})
	}
	return out, nil
}

// DocumentSymbols returns the outline of uri
func (a *API) DocumentSymbols(uri string) ([]*Symbol, error) {
	doc, ok := a.Document(uri)
	if !ok {
		return nil, fmt.Errorf("document not found: %s", uri)
	}
	return doc.Symbols, nil
}

// Hover describes the symbol at pos. It returns nil when there is none.
func (a *API) Hover(uri string, pos Position) (*Hover, error) {
	doc, ok := a.Document(uri)
	if !ok {
		return nil, fmt.Errorf("document not found: %s", uri)
	}

	sym := findSymbol(doc.Symbols, pos)
	if sym == nil {
		return nil, nil //nolint:nilnil // no symbol under the cursor
	}
	return buildHover(sym), nil
}

func severityOf(s errors.ErrorSeverity) Severity {
	switch s {
	case errors.SeverityWarning:
		return SeverityWarning
	case errors.SeverityInfo:
		return SeverityInfo
	default:
		return SeverityError
	}
}
