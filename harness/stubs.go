// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package harness

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielhkuo/mergington-activities/widget"
)

type noopClassList struct{}

func (noopClassList) Add(...string)    {}
func (noopClassList) Remove(...string) {}

// Document is an element cache keyed by id. Elements are created blank on
// first lookup and the same record is returned afterwards. Not safe for
// concurrent use.
type Document struct {
	elements map[string]*widget.Element
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]*widget.Element)}
}

func (d *Document) ElementByID(id string) *widget.Element {
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := &widget.Element{ClassList: noopClassList{}}
	d.elements[id] = el
	return el
}

// Len reports how many elements have been looked up
func (d *Document) Len() int {
	return len(d.elements)
}

// Call is one request seen by a Fetch stub
type Call struct {
	Method string
	URL    string
}

// Fetch answers every request with the same canned payload. The response
// is OK unless the payload's "ok" field is the boolean false.
type Fetch struct {
	payload map[string]any
	calls   []Call
}

func NewFetch(payload map[string]any) *Fetch {
	return &Fetch{payload: payload}
}

func (f *Fetch) Fetch(_ context.Context, method, url string) (*widget.Response, error) {
	f.calls = append(f.calls, Call{Method: method, URL: url})

	body, err := json.Marshal(f.payload)
	if err != nil {
		return nil, err
	}

	ok := true
	if v, isBool := f.payload["ok"].(bool); isBool {
		ok = v
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}

	return widget.NewResponse(status, ok, body), nil
}

// Calls returns the requests made so far, in order
func (f *Fetch) Calls() []Call {
	return append([]Call(nil), f.calls...)
}

// Env is the stub context handed to one scenario
type Env struct {
	Doc    *Document
	Fetch  *Fetch
	Widget *widget.Widget
}

// NewEnv builds a fresh document, a fetch stub answering with payload, and
// a widget wired to both.
func NewEnv(payload map[string]any, opts ...widget.Option) *Env {
	doc := NewDocument()
	fetch := NewFetch(payload)
	return &Env{
		Doc:    doc,
		Fetch:  fetch,
		Widget: widget.New(doc, fetch, opts...),
	}
}
