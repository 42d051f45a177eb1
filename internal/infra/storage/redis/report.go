package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/fieldguard/internal/audit"

	"github.com/redis/go-redis/v9"
)

// reportKeyPrefix is the namespace of stored audit reports.
const reportKeyPrefix = "report"

// reportKey returns the key of a report.
//
// Format: "report:{id}"
func reportKey(id string) string {
	return fmt.Sprintf("%s:%s", reportKeyPrefix, id)
}

// SaveReport implements audit.ReportStorage. Reports are stored as JSON and
// expire after the configured TTL.
func (c *client) SaveReport(ctx context.Context, r audit.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, reportKey(r.ID), data, c.reportTTL).Err()
}

// LoadReport implements audit.ReportStorage.
//
// A missing or expired key is reported as audit.ErrReportNotFound.
func (c *client) LoadReport(ctx context.Context, id string) (audit.Report, error) {
	data, err := c.conn.Get(ctx, reportKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = audit.ErrReportNotFound
		}

		return audit.Report{}, err
	}

	var r audit.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return audit.Report{}, fmt.Errorf("decode report %s: %w", id, err)
	}

	return r, nil
}

// Compile-time assertion to ensure client implements the audit.ReportStorage interface.
var _ audit.ReportStorage = new(client)
