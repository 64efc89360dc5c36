package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDump is the loggable view of an error chain. Postgres fields are
// populated when a driver error is anywhere in the chain, whichever of the
// two linked drivers produced it.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Chain      []string `json:"chain,omitempty"`

	PGCode       string `json:"pg_code,omitempty"`
	PGConstraint string `json:"pg_constraint,omitempty"`
	PGTable      string `json:"pg_table,omitempty"`
	PGColumn     string `json:"pg_column,omitempty"`
	PGDetail     string `json:"pg_detail,omitempty"`
	PGMessage    string `json:"pg_message,omitempty"`
}

// Dump flattens err into an ErrorDump for structured logging. Never returns
// response-safe data; callers must not echo it to clients.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	dump := ErrorDump{
		TopMessage: err.Error(),
		Chain:      chain(err),
	}
	if typed := As(err); typed != nil {
		dump.Code = typed.Code()
	}
	dump.attachPG(err)
	return dump
}

func chain(err error) []string {
	var links []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		links = append(links, fmt.Sprintf("%T: %v", e, e))
	}
	return links
}

func (d *ErrorDump) attachPG(err error) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.PGCode = pgxErr.Code
		d.PGConstraint = pgxErr.ConstraintName
		d.PGTable = pgxErr.TableName
		d.PGColumn = pgxErr.ColumnName
		d.PGDetail = pgxErr.Detail
		d.PGMessage = pgxErr.Message
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		d.PGCode = string(pqErr.Code)
		d.PGConstraint = pqErr.Constraint
		d.PGTable = pqErr.Table
		d.PGColumn = pqErr.Column
		d.PGDetail = pqErr.Detail
		d.PGMessage = pqErr.Message
	}
}
