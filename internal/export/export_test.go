package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/store"
)

func sampleHand() (store.Session, store.Hand) {
	sess := store.Session{ID: "sess-1", Name: "Friday game", Venue: "Lodge", TableSize: 9}
	hand := store.Hand{
		ID:         "hand-1",
		SessionID:  sess.ID,
		ButtonSeat: 5,
		HeroSeat:   5,
		PlayedAt:   time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
		Sequence: action.Sequence{
			{Seat: 5, Action: action.Action{Primitive: action.Raise}, Street: action.Preflop, Order: 1},
			{Seat: 6, Action: action.Action{Primitive: action.Call}, Street: action.Preflop, Order: 2},
			{Seat: 6, Action: action.Action{Primitive: action.Check}, Street: action.Flop, Order: 3},
			{Seat: 5, Action: action.Action{Primitive: action.Bet, Sizing: action.SizingSmall}, Street: action.Flop, Order: 4},
			{Seat: 6, Action: action.Action{Primitive: action.Fold}, Street: action.Flop, Order: 5},
		},
	}
	return sess, hand
}

func TestNewRecord_AnnotatesPatterns(t *testing.T) {
	sess, hand := sampleHand()
	rec := NewRecord(sess, hand)

	if rec.HandID != "hand-1" || rec.ButtonSeat != 5 {
		t.Fatalf("record metadata wrong: %+v", rec)
	}
	joined := strings.Join(rec.Actions, "\n")
	for _, want := range []string{
		"-- preflop",
		"p5 raise # open",
		"-- flop",
		"p5 bet (small) # cbet_ip",
		"p6 fold # fold_to_cbet",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("actions missing %q:\n%s", want, joined)
		}
	}
}

func TestEncode_TOMLShape(t *testing.T) {
	sess, hand := sampleHand()
	data, err := Encode(NewRecord(sess, hand))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `hand = "hand-1"`) {
		t.Errorf("missing hand key:\n%s", out)
	}
	if !strings.Contains(out, `played_at = "2026-03-14 20:30:00"`) {
		t.Errorf("missing played_at:\n%s", out)
	}
}

func TestWriteSession(t *testing.T) {
	dir := t.TempDir()
	sess, hand := sampleHand()

	paths, err := WriteSession(dir, sess, []store.Hand{hand})
	if err != nil {
		t.Fatalf("WriteSession: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("wrote %d files, want 1", len(paths))
	}
	if filepath.Base(paths[0]) != "hand-1.toml" {
		t.Errorf("unexpected filename %s", paths[0])
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(data), "cbet_ip") {
		t.Error("exported file missing pattern annotation")
	}
}
