package main

import (
	"context"
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/railbirdhq/railbird/internal/export"
	"github.com/railbirdhq/railbird/internal/store"
)

// ExportCmd writes a session's hands to disk as TOML records
type ExportCmd struct {
	SessionID string `kong:"arg,help='Session ID to export'"`
	Out       string `kong:"default='.',help='Output directory'"`
	Database  string `kong:"default='railbird.db',help='SQLite database path'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *ExportCmd) Run() error {
	logger := setupLogger("warn", c.Debug)

	st, err := store.Open(c.Database, logger, quartz.NewReal())
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	sess, err := st.GetSession(ctx, c.SessionID)
	if err != nil {
		return err
	}
	hands, err := st.ListHands(ctx, sess.ID)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("session %s has no recorded hands", sess.ID)
	}

	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return err
	}
	paths, err := export.WriteSession(c.Out, sess, hands)
	if err != nil {
		return err
	}

	logger.Info("Export complete", "session", sess.ID, "hands", len(paths), "dir", c.Out)
	fmt.Printf("Exported %d hands to %s\n", len(paths), c.Out)
	return nil
}
