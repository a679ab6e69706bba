package main

import (
	"context"
	"fmt"

	"github.com/coder/quartz"

	"github.com/railbirdhq/railbird/internal/stats"
	"github.com/railbirdhq/railbird/internal/store"
)

// StatsCmd prints per-seat statistics for one session
type StatsCmd struct {
	SessionID string `kong:"arg,help='Session ID to summarize'"`
	Database  string `kong:"default='railbird.db',help='SQLite database path'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *StatsCmd) Run() error {
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

	statsHands := make([]stats.Hand, len(hands))
	for i, h := range hands {
		statsHands[i] = stats.Hand{Sequence: h.Sequence, Button: h.ButtonSeat}
	}

	fmt.Printf("%s", stats.Compute(statsHands).Render())
	return nil
}
