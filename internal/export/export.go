// Package export writes recorded hands to disk as TOML hand records
// with strategic pattern annotations, one file per hand.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/fileutil"
	"github.com/railbirdhq/railbird/internal/pattern"
	"github.com/railbirdhq/railbird/internal/store"
)

// Record is the on-disk form of one hand. Action lines carry a "pN"
// seat tag, the raw action, and the classified pattern as a trailing
// comment, e.g. "p5 raise # open".
type Record struct {
	HandID     string   `toml:"hand"`
	SessionID  string   `toml:"session"`
	Session    string   `toml:"session_name,omitempty"`
	Venue      string   `toml:"venue,omitempty"`
	TableSize  int      `toml:"table_size"`
	ButtonSeat int      `toml:"button_seat"`
	HeroSeat   int      `toml:"hero_seat,omitempty"`
	PlayedAt   string   `toml:"played_at,omitempty"`
	Note       string   `toml:"note,omitempty"`
	Actions    []string `toml:"actions"`
}

// NewRecord builds a Record from a stored hand, running the preflop
// and postflop classifiers to annotate each action line.
func NewRecord(sess store.Session, hand store.Hand) Record {
	rec := Record{
		HandID:     hand.ID,
		SessionID:  sess.ID,
		Session:    sess.Name,
		Venue:      sess.Venue,
		TableSize:  sess.TableSize,
		ButtonSeat: hand.ButtonSeat,
		HeroSeat:   hand.HeroSeat,
		Note:       hand.Note,
	}
	if !hand.PlayedAt.IsZero() {
		rec.PlayedAt = hand.PlayedAt.UTC().Format("2006-01-02 15:04:05")
	}

	labels := make(map[int]string, len(hand.Sequence))
	for _, c := range pattern.PreflopPatterns(hand.Sequence) {
		if c.Pattern != pattern.None {
			labels[c.Entry.Order] = string(c.Pattern)
		}
	}
	for _, c := range pattern.PostflopPatterns(hand.Sequence, hand.ButtonSeat) {
		if c.Pattern != pattern.None {
			labels[c.Entry.Order] = string(c.Pattern)
		}
	}

	street := action.Street(-1)
	for _, e := range hand.Sequence {
		if e.Street != street {
			street = e.Street
			rec.Actions = append(rec.Actions, "-- "+street.String())
		}
		line := fmt.Sprintf("p%d %s", e.Seat, e.Action)
		if l, ok := labels[e.Order]; ok {
			line += " # " + l
		}
		rec.Actions = append(rec.Actions, line)
	}
	return rec
}

// Encode renders the record as TOML.
func Encode(rec Record) ([]byte, error) {
	var buf strings.Builder
	enc := toml.NewEncoder(&buf)
	enc.Indent = "\t"
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode hand %s: %w", rec.HandID, err)
	}
	return []byte(buf.String()), nil
}

// WriteHand writes one hand record to dir as <handID>.toml.
func WriteHand(dir string, rec Record) (string, error) {
	data, err := Encode(rec)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, rec.HandID+".toml")
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write hand %s: %w", rec.HandID, err)
	}
	return path, nil
}

// WriteSession exports every hand of a session to dir and returns the
// written paths.
func WriteSession(dir string, sess store.Session, hands []store.Hand) ([]string, error) {
	paths := make([]string, 0, len(hands))
	for _, h := range hands {
		p, err := WriteHand(dir, NewRecord(sess, h))
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
