package database

import (
	"context"

	"github.com/google/uuid"
)

// InsertErrorLog writes outside of any pipeline transaction so the record
// survives the rollback of the failed event.
func (q *Queries) InsertErrorLog(ctx context.Context, title, text string) (*ErrorLog, error) {
	e := &ErrorLog{
		ID:      uuid.NewString(),
		Title:   title,
		Error:   text,
		Created: q.stamp(),
	}
	err := q.exec(ctx, "INSERT INTO ErrorLog (ID, Title, Error, Created) VALUES ($1, $2, $3, $4);",
		e.ID, e.Title, e.Error, e.Created)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (q *Queries) ErrorLogs(ctx context.Context) ([]*ErrorLog, error) {
	var logs []*ErrorLog
	err := q.selectAll(ctx, &logs, "SELECT * FROM ErrorLog ORDER BY Created, ID;")
	return logs, err
}
