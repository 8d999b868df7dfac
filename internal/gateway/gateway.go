// Package gateway invokes the stored procedures that own every data
// operation of the site. Procedures are Postgres set-returning functions and
// are called with named notation so parameter order never matters.
package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Param is a named procedure argument. A nil Value is sent as NULL.
type Param struct {
	Name  string
	Value any
}

// P is shorthand for building a Param.
func P(name string, value any) Param { return Param{Name: name, Value: value} }

// Gateway runs a procedure and scans every returned row into dest, which must
// be a pointer to a slice.
type Gateway interface {
	Invoke(ctx context.Context, dest any, procedure string, params ...Param) error
}

// SQLGateway implements Gateway on top of a shared sqlx pool.
type SQLGateway struct {
	db *sqlx.DB
}

func NewSQLGateway(db *sqlx.DB) *SQLGateway { return &SQLGateway{db: db} }

func (g *SQLGateway) Invoke(ctx context.Context, dest any, procedure string, params ...Param) error {
	q, args, err := buildCall(procedure, params)
	if err != nil {
		return err
	}
	if err := g.db.SelectContext(ctx, dest, q, args...); err != nil {
		return fmt.Errorf("call %s: %w", procedure, err)
	}
	return nil
}

// Ping verifies the pool can still reach the database.
func (g *SQLGateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// buildCall renders `SELECT * FROM proc(p_a => $1, p_b => $2)`.
func buildCall(procedure string, params []Param) (string, []any, error) {
	if !identRe.MatchString(procedure) {
		return "", nil, fmt.Errorf("invalid procedure name %q", procedure)
	}
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(procedure)
	b.WriteByte('(')
	args := make([]any, 0, len(params))
	for i, p := range params {
		if !identRe.MatchString(p.Name) {
			return "", nil, fmt.Errorf("invalid parameter name %q for %s", p.Name, procedure)
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(" => $")
		b.WriteString(strconv.Itoa(i + 1))
		args = append(args, p.Value)
	}
	b.WriteByte(')')
	return b.String(), args, nil
}
