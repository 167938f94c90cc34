package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/dmitrijs2005/solsocial/internal/common"
)

// StoreError classifies a repository failure for callers. Connectivity and
// timeout errors are transient, the client may retry; they map to
// common.ErrorDependency. Anything else is a bug and maps to
// common.ErrorInternal.
func StoreError(err error) error {
	if transient(err) {
		return common.ErrorDependency
	}
	return common.ErrorInternal
}

func transient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	// pgx surfaces unreachable or dropped connections as net errors.
	var netErr net.Error
	return errors.As(err, &netErr)
}
