package redis

import (
	"context"
	"testing"
	"time"

	"github.com/gabapcia/fieldguard/internal/audit"
	"github.com/gabapcia/fieldguard/internal/fieldcheck"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableAddr points to a port nothing listens on.
const unreachableAddr = "127.0.0.1:1"

func newUnreachableClient(opts ...Option) *client {
	conn := redis.NewClient(&redis.Options{
		Addr:        unreachableAddr,
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})

	return newClient(conn, opts...)
}

const testReportID = "4bf92f35-77b3-4da6-a3ce-929d0e0e4736"

func newTestClient(t *testing.T, opts ...Option) (*client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := newClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), opts...)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func vehicleReport() audit.Report {
	return audit.Report{
		ID:        testReportID,
		Source:    "vehicles.json",
		CheckedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		Fields:    3,
		Violations: []fieldcheck.Violation{
			{Path: "bike", Message: "FromAnnotation"},
			{Path: "car", Message: "FromValidator"},
			{Path: "truck", Message: "FromValidator"},
		},
	}
}

func TestReportKey(t *testing.T) {
	assert.Equal(t, "report:4bf92f35-77b3-4da6-a3ce-929d0e0e4736", reportKey(testReportID))
}

func TestNewClient(t *testing.T) {
	t.Run("applies default ttl", func(t *testing.T) {
		c := newUnreachableClient()
		defer c.Close()

		assert.Equal(t, defaultReportTTL, c.reportTTL)
	})

	t.Run("applies custom ttl", func(t *testing.T) {
		c := newUnreachableClient(WithReportTTL(time.Hour))
		defer c.Close()

		assert.Equal(t, time.Hour, c.reportTTL)
	})

	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		c, err := NewClient(t.Context(), mr.Addr(), "", "", 0, WithReportTTL(time.Hour))
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, time.Hour, c.reportTTL)
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		c, err := NewClient(ctx, unreachableAddr, "", "", 0)
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestClient_Reports(t *testing.T) {
	t.Run("connection errors are not reported as not found", func(t *testing.T) {
		c := newUnreachableClient()
		defer c.Close()

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		_, err := c.LoadReport(ctx, testReportID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, audit.ErrReportNotFound)

		err = c.SaveReport(ctx, audit.Report{ID: testReportID})
		assert.Error(t, err)
	})
}

func TestClient_SaveLoadReport(t *testing.T) {
	t.Run("round trip keeps every field", func(t *testing.T) {
		c, _ := newTestClient(t)
		want := vehicleReport()

		require.NoError(t, c.SaveReport(t.Context(), want))

		got, err := c.LoadReport(t.Context(), testReportID)
		require.NoError(t, err)

		assert.True(t, want.CheckedAt.Equal(got.CheckedAt), "checked_at: want %s, got %s", want.CheckedAt, got.CheckedAt)
		got.CheckedAt = want.CheckedAt
		assert.Equal(t, want, got)
	})

	t.Run("passing report loads with an empty violation list", func(t *testing.T) {
		c, _ := newTestClient(t)
		want := vehicleReport()
		want.Violations = []fieldcheck.Violation{}

		require.NoError(t, c.SaveReport(t.Context(), want))

		got, err := c.LoadReport(t.Context(), testReportID)
		require.NoError(t, err)

		assert.NotNil(t, got.Violations)
		assert.Empty(t, got.Violations)
		assert.True(t, got.Passed())
	})

	t.Run("stores json under the report key", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.SaveReport(t.Context(), vehicleReport()))

		raw, err := mr.Get("report:" + testReportID)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "4bf92f35-77b3-4da6-a3ce-929d0e0e4736",
			"source": "vehicles.json",
			"checked_at": "2025-07-01T12:00:00Z",
			"fields": 3,
			"violations": [
				{"path": "bike", "message": "FromAnnotation"},
				{"path": "car", "message": "FromValidator"},
				{"path": "truck", "message": "FromValidator"}
			]
		}`, raw)
	})

	t.Run("applies the default ttl", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, c.SaveReport(t.Context(), vehicleReport()))

		assert.Equal(t, defaultReportTTL, mr.TTL(reportKey(testReportID)))
	})

	t.Run("applies a custom ttl and expires", func(t *testing.T) {
		c, mr := newTestClient(t, WithReportTTL(time.Minute))
		require.NoError(t, c.SaveReport(t.Context(), vehicleReport()))

		assert.Equal(t, time.Minute, mr.TTL(reportKey(testReportID)))

		mr.FastForward(2 * time.Minute)

		_, err := c.LoadReport(t.Context(), testReportID)
		assert.ErrorIs(t, err, audit.ErrReportNotFound)
	})

	t.Run("zero ttl keeps the report", func(t *testing.T) {
		c, mr := newTestClient(t, WithReportTTL(0))
		require.NoError(t, c.SaveReport(t.Context(), vehicleReport()))

		assert.Zero(t, mr.TTL(reportKey(testReportID)))
		assert.True(t, mr.Exists(reportKey(testReportID)))
	})

	t.Run("missing key is not found", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.LoadReport(t.Context(), testReportID)
		assert.ErrorIs(t, err, audit.ErrReportNotFound)
	})

	t.Run("corrupt value fails to decode", func(t *testing.T) {
		c, mr := newTestClient(t)
		require.NoError(t, mr.Set(reportKey(testReportID), "not json"))

		_, err := c.LoadReport(t.Context(), testReportID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, audit.ErrReportNotFound)
		assert.Contains(t, err.Error(), "decode report")
	})
}
