package dbx

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/dmitrijs2005/solsocial/internal/common"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline exceeded", context.DeadlineExceeded, common.ErrorDependency},
		{"wrapped deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), common.ErrorDependency},
		{"canceled", context.Canceled, common.ErrorDependency},
		{"conn done", sql.ErrConnDone, common.ErrorDependency},
		{"bad conn", driver.ErrBadConn, common.ErrorDependency},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, common.ErrorDependency},
		{"constraint violation", errors.New("duplicate key value violates unique constraint"), common.ErrorInternal},
		{"scan failure", errors.New("sql: Scan error on column index 2"), common.ErrorInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StoreError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Errorf("StoreError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
