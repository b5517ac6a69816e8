// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

// Element ids the widget reads and writes
const (
	ActivitiesListID = "activities-list"
	ActivitySelectID = "activity"
	MessageID        = "message"
	SignupFormID     = "signup-form"
)

// TokenList is the class-list capability of an element
type TokenList interface {
	Add(tokens ...string)
	Remove(tokens ...string)
}

type noopTokens struct{}

func (noopTokens) Add(...string)    {}
func (noopTokens) Remove(...string) {}

// Element is the mutable slice of a DOM node the widget touches. Text holds
// the element's markup (or plain text for the message element).
type Element struct {
	Text      string
	Value     string
	ClassName string
	ClassList TokenList
}

// Reset clears the element's value, like resetting a form.
func (e *Element) Reset() {
	e.Value = ""
}

// AppendChild is a no-op: child markup is carried in Text.
func (e *Element) AppendChild(*Element) {}

// Classes returns the element's class list, or a no-op list when unset.
func (e *Element) Classes() TokenList {
	if e.ClassList == nil {
		return noopTokens{}
	}
	return e.ClassList
}

// Document looks up elements by id.
type Document interface {
	ElementByID(id string) *Element
}
