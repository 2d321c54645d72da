package repositories

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestBadgerLogger_Writes_Through_Slog(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var logger badger.Logger = NewBadgerLogger(log)

	logger.Warningf("value log %d is %s\n", 3, "truncated")

	req.Contains(buf.String(), "level=WARN")
	req.Contains(buf.String(), `msg="value log 3 is truncated"`)
	req.Contains(buf.String(), "component=badger")
}
