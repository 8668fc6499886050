package repository

import (
	"database/sql"
	"time"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// now is the timestamp stamped on writes. Postgres keeps microseconds, so
// truncate to keep values identical across engines.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
