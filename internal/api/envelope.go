package api

import "encoding/json"

// Warning is an advisory attached to a response; it never blocks rendering.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Error is the backend's domain error: code is machine-matchable, the rest
// is display text.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
	Details string `json:"details,omitempty"`
}

// CodeEmptyDB is the one error code the console treats specially: the
// backend has no parsed events yet.
const CodeEmptyDB = "EMPTY_DB"

// CodeInternal marks errors synthesized on the client for transport-level
// failures.
const CodeInternal = "INTERNAL"

// Envelope is the uniform wrapper every backend call resolves to. Exactly
// one of Data or Error is meaningful, discriminated by OK.
type Envelope struct {
	OK       bool           `json:"ok"`
	Command  string         `json:"command,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Warnings []Warning      `json:"warnings"`
	Data     map[string]any `json:"data"`
	Error    *Error         `json:"error"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// Err returns the envelope error, degrading a missing one to a generic
// presentation so ok=false never crashes the renderer.
func (e *Envelope) Err() *Error {
	if e.Error != nil {
		return e.Error
	}
	return &Error{Code: CodeInternal, Message: "Unknown error.", Hint: "Inspect the raw payload."}
}

// EmptyDB reports whether the envelope failed with the empty-database code.
func (e *Envelope) EmptyDB() bool {
	return !e.OK && e.Error != nil && e.Error.Code == CodeEmptyDB
}

// List reads a data field as a list; a missing or differently shaped field
// is an empty list.
func (e *Envelope) List(key string) []any {
	if e.Data == nil {
		return nil
	}
	v, ok := e.Data[key].([]any)
	if !ok {
		return nil
	}
	return v
}

// String reads a data field as a string, empty if absent.
func (e *Envelope) String(key string) string {
	if e.Data == nil {
		return ""
	}
	s, _ := e.Data[key].(string)
	return s
}

// Int reads a data field as an int. JSON numbers decode as float64.
func (e *Envelope) Int(key string) (int, bool) {
	if e.Data == nil {
		return 0, false
	}
	switch v := e.Data[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func (e *Envelope) PrettyJSON() string {
	b, _ := json.MarshalIndent(e, "", "  ")
	return string(b)
}

func (e *Envelope) PrettyData() string {
	b, _ := json.MarshalIndent(e.Data, "", "  ")
	return string(b)
}

// netError builds the synthesized envelope for transport-level failures.
// command is the path that failed; it prefixes the details so the raw
// payload shows which call broke.
func netError(command, details string) *Envelope {
	if command != "" {
		details = command + ": " + details
	}
	return &Envelope{
		OK: false,
		Error: &Error{
			Code:    CodeInternal,
			Message: "Network error.",
			Hint:    "Check the API server and retry.",
			Details: details,
		},
	}
}
