package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// codeBySQLState classifies the SQLSTATEs the kpi views table can raise
var codeBySQLState = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation, (owner, name)
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"23502": ErrorCodeValidation,      // not_null_violation
	"23514": ErrorCodeValidation,      // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation, e.g. a bad uuid
	"57014": ErrorCodeUnavailable,     // query_canceled, statement_timeout fired
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
}

// PgError returns the *pgconn.PgError in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	ok := stderrs.As(err, &pgErr)
	return pgErr, ok
}

// DBErrorCode classifies a postgres error, ok is false when err is not one
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, known := codeBySQLState[pgErr.Code]; known {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with msg and its classified code, ErrorCodeDB when unknown
// nil stays nil and errors that already carry a code pass through
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if _, ours := As(err); ours {
		return err
	}
	return Wrap(err, ErrorCodeDB, msg)
}
