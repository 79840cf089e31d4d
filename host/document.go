package host

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the host page.
type Document struct {
	mu       sync.Mutex
	location *url.URL
	head     *html.Node
	queues   map[string]*Queue
	order    []string
	globals  map[string]any

	// Title and Referrer mirror document.title and document.referrer.
	Title    string
	Referrer string
}

// NewDocument creates a document located at rawURL. An empty rawURL gives a
// blank page with no query string.
func NewDocument(rawURL string) (*Document, error) {
	loc, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	return &Document{
		location: loc,
		head:     &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head},
		queues:   make(map[string]*Queue),
		globals:  make(map[string]any),
	}, nil
}

// MustDocument is NewDocument for fixed, known-good URLs.
func MustDocument(rawURL string) *Document {
	d, err := NewDocument(rawURL)
	if err != nil {
		panic(err)
	}
	return d
}

// URL returns the full page URL.
func (d *Document) URL() string {
	return d.location.String()
}

// Path returns the page path, "/" when empty.
func (d *Document) Path() string {
	if d.location.Path == "" {
		return "/"
	}
	return d.location.Path
}

// Host returns the page hostname without port.
func (d *Document) Host() string {
	return d.location.Hostname()
}

// Query returns the raw query string with its leading "?", or "" when the
// page has none.
func (d *Document) Query() string {
	if d.location.RawQuery == "" {
		return ""
	}
	return "?" + d.location.RawQuery
}

// Secure reports whether the page was served over https.
func (d *Document) Secure() bool {
	return d.location.Scheme == "https"
}

// ResolveScript turns a protocol-relative source ("//cdn...") into an
// absolute one using the page scheme.
func (d *Document) ResolveScript(src string) string {
	if !strings.HasPrefix(src, "//") {
		return src
	}
	if d.Secure() {
		return "https:" + src
	}
	return "http:" + src
}

// InjectScript appends an async <script> element for src to the head and
// returns the resolved source.
func (d *Document) InjectScript(src string, attrs ...html.Attribute) string {
	resolved := d.ResolveScript(src)
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr: append([]html.Attribute{
			{Key: "type", Val: "text/javascript"},
			{Key: "async", Val: ""},
			{Key: "src", Val: resolved},
		}, attrs...),
	}

	d.mu.Lock()
	d.head.AppendChild(node)
	d.mu.Unlock()
	return resolved
}

// Scripts returns the sources of all injected scripts in injection order.
func (d *Document) Scripts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []string
	for n := d.head.FirstChild; n != nil; n = n.NextSibling {
		if n.DataAtom != atom.Script {
			continue
		}
		for _, a := range n.Attr {
			if a.Key == "src" {
				out = append(out, a.Val)
			}
		}
	}
	return out
}

// Render writes the head element as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.head)
}

// Queue returns the named global command queue, creating it on first use.
func (d *Document) Queue(name string) *Queue {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, ok := d.queues[name]
	if !ok {
		q = &Queue{name: name}
		d.queues[name] = q
		d.order = append(d.order, name)
	}
	return q
}

// Queues returns the names of all queues in creation order.
func (d *Document) Queues() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.order)
}

// SetGlobal assigns a global settings object, e.g. intercomSettings.
func (d *Document) SetGlobal(name string, v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.globals[name] = v
}

// Global returns a global previously set with SetGlobal.
func (d *Document) Global(name string) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.globals[name]
	return v, ok
}

// Globals returns the names of all globals, sorted.
func (d *Document) Globals() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.globals))
	for name := range d.globals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
