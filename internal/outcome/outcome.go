// Package outcome decodes the status sentinels returned by stored procedures
// and maps them to HTTP responses.
package outcome

import (
	"fmt"
	"net/http"
	"strings"
)

// Sentinel is a status value returned by a stored procedure.
type Sentinel string

const (
	OK                    Sentinel = "OK"
	NotFound              Sentinel = "NOT_FOUND"
	EmailRegistered       Sentinel = "EXISTE"
	EmailExists           Sentinel = "EMAIL_EXISTS"
	UsernameExists        Sentinel = "USERNAME_EXISTS"
	AgeBelowMinimum       Sentinel = "AGE_BELOW_MINIMUM"
	NoDeleteLastAdmin     Sentinel = "NO_DELETE_LAST_ADMIN"
	CannotDemoteLastAdmin Sentinel = "CANNOT_DEMOTE_LAST_ADMIN"
)

// Response is the HTTP answer for one sentinel. Message may hold {name}
// placeholders filled by Vars.
type Response struct {
	Status  int
	Message string
	Field   string
}

// Vars fills message placeholders.
type Vars map[string]string

func (r Response) render(v Vars) Response {
	if len(v) == 0 || !strings.Contains(r.Message, "{") {
		return r
	}
	pairs := make([]string, 0, len(v)*2)
	for k, val := range v {
		pairs = append(pairs, "{"+k+"}", val)
	}
	r.Message = strings.NewReplacer(pairs...).Replace(r.Message)
	return r
}

// UnknownSentinelError reports a status value outside a procedure's closed set.
type UnknownSentinelError struct {
	Procedure string
	Raw       string
}

func (e *UnknownSentinelError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s returned no status", e.Procedure)
	}
	return fmt.Sprintf("%s returned unexpected status %q", e.Procedure, e.Raw)
}

// Table is the closed set of sentinels one procedure can return.
type Table struct {
	Procedure string
	entries   map[Sentinel]Response
	// Fallback answers sentinels outside the set.
	Fallback Response
}

func newTable(procedure, fallback string, entries map[Sentinel]Response) *Table {
	return &Table{
		Procedure: procedure,
		entries:   entries,
		Fallback:  Response{Status: http.StatusInternalServerError, Message: fallback},
	}
}

// Decode turns a raw status column into a Sentinel of this table.
func (t *Table) Decode(raw string) (Sentinel, error) {
	s := Sentinel(strings.TrimSpace(raw))
	if _, ok := t.entries[s]; !ok {
		return "", &UnknownSentinelError{Procedure: t.Procedure, Raw: raw}
	}
	return s, nil
}

// Lookup returns the response for s with placeholders filled. Sentinels
// outside the table resolve to Fallback.
func (t *Table) Lookup(s Sentinel, v Vars) Response {
	r, ok := t.entries[s]
	if !ok {
		return t.Fallback
	}
	return r.render(v)
}

// Sentinels lists the closed set, for diagnostics and tests.
func (t *Table) Sentinels() []Sentinel {
	out := make([]Sentinel, 0, len(t.entries))
	for s := range t.entries {
		out = append(out, s)
	}
	return out
}
