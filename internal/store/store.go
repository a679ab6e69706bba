// Package store persists sessions, hands and action sequences to
// SQLite. It uses the pure-Go driver so the binary stays cgo-free.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/railbirdhq/railbird/internal/action"
)

// ErrNotFound is returned when a session or hand does not exist.
var ErrNotFound = errors.New("store: not found")

// Session is one recorded live session.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Venue     string     `json:"venue,omitempty"`
	TableSize int        `json:"table_size"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Hand is one recorded hand with its full action sequence.
type Hand struct {
	ID         string          `json:"id"`
	SessionID  string          `json:"session_id"`
	ButtonSeat int             `json:"button_seat"`
	HeroSeat   int             `json:"hero_seat,omitempty"`
	PlayedAt   time.Time       `json:"played_at"`
	Note       string          `json:"note,omitempty"`
	Sequence   action.Sequence `json:"sequence"`
}

// Store wraps the SQLite connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
	clock  quartz.Clock
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	venue      TEXT NOT NULL DEFAULT '',
	table_size INTEGER NOT NULL,
	started_at TIMESTAMP NOT NULL,
	ended_at   TIMESTAMP
);

CREATE TABLE IF NOT EXISTS hands (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	button_seat INTEGER NOT NULL,
	hero_seat   INTEGER NOT NULL DEFAULT 0,
	played_at   TIMESTAMP NOT NULL,
	note        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_hands_session ON hands(session_id);

CREATE TABLE IF NOT EXISTS actions (
	hand_id   TEXT NOT NULL REFERENCES hands(id) ON DELETE CASCADE,
	ord       INTEGER NOT NULL,
	seat      INTEGER NOT NULL,
	street    TEXT NOT NULL,
	primitive TEXT NOT NULL,
	sizing    TEXT NOT NULL DEFAULT '',
	outcome   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (hand_id, ord)
);
`

// Open opens (creating if needed) the database at path and ensures the
// schema exists. A "file:" URI is passed through untouched so tests can
// use in-memory databases.
func Open(path string, logger *log.Logger, clock quartz.Clock) (*Store, error) {
	if clock == nil {
		clock = quartz.NewReal()
	}

	if !strings.HasPrefix(path, "file:") {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		path = "file:" + abs + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids lock
	// contention between them.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, logger: logger.WithPrefix("store"), clock: clock}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Now returns the store's clock reading in UTC. Callers stamping new
// records use it so tests can pin time through the injected clock.
func (s *Store) Now() time.Time {
	return s.clock.Now().UTC()
}

// CreateSession inserts a new session and returns it.
func (s *Store) CreateSession(ctx context.Context, name, venue string, tableSize int) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		Name:      name,
		Venue:     venue,
		TableSize: tableSize,
		StartedAt: s.clock.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, name, venue, table_size, started_at) VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Name, sess.Venue, sess.TableSize, sess.StartedAt)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	s.logger.Info("session created", "id", sess.ID, "name", sess.Name)
	return sess, nil
}

// GetSession fetches one session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, venue, table_size, started_at, ended_at FROM sessions WHERE id = ?`, id)
	var sess Session
	err := row.Scan(&sess.ID, &sess.Name, &sess.Venue, &sess.TableSize, &sess.StartedAt, &sess.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("select session: %w", err)
	}
	return sess, nil
}

// ListSessions returns all sessions, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, venue, table_size, started_at, ended_at FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Name, &sess.Venue, &sess.TableSize, &sess.StartedAt, &sess.EndedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

// EndSession stamps the session's end time.
func (s *Store) EndSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`,
		s.clock.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveHand inserts a hand and its action sequence in one transaction.
// The sequence is boundary-validated first so malformed input never
// reaches the database.
func (s *Store) SaveHand(ctx context.Context, hand Hand) error {
	if err := hand.Sequence.Validate(); err != nil {
		return fmt.Errorf("invalid action sequence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO hands (id, session_id, button_seat, hero_seat, played_at, note) VALUES (?, ?, ?, ?, ?, ?)`,
		hand.ID, hand.SessionID, hand.ButtonSeat, hand.HeroSeat, hand.PlayedAt.UTC(), hand.Note)
	if err != nil {
		return fmt.Errorf("insert hand: %w", err)
	}

	for _, e := range hand.Sequence {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO actions (hand_id, ord, seat, street, primitive, sizing, outcome) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			hand.ID, e.Order, e.Seat, e.Street.String(), e.Action.Primitive.String(),
			e.Action.Sizing.String(), e.Action.Outcome.String())
		if err != nil {
			return fmt.Errorf("insert action %d: %w", e.Order, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit hand: %w", err)
	}
	s.logger.Debug("hand saved", "id", hand.ID, "actions", len(hand.Sequence))
	return nil
}

// GetHand fetches a hand and its action sequence.
func (s *Store) GetHand(ctx context.Context, id string) (Hand, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, button_seat, hero_seat, played_at, note FROM hands WHERE id = ?`, id)
	var hand Hand
	err := row.Scan(&hand.ID, &hand.SessionID, &hand.ButtonSeat, &hand.HeroSeat, &hand.PlayedAt, &hand.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return Hand{}, ErrNotFound
	}
	if err != nil {
		return Hand{}, fmt.Errorf("select hand: %w", err)
	}

	hand.Sequence, err = s.loadSequence(ctx, id)
	if err != nil {
		return Hand{}, err
	}
	return hand, nil
}

// ListHands returns all hands in a session in play order, sequences
// included.
func (s *Store) ListHands(ctx context.Context, sessionID string) ([]Hand, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, button_seat, hero_seat, played_at, note FROM hands WHERE session_id = ? ORDER BY played_at, id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("select hands: %w", err)
	}
	defer rows.Close()

	var out []Hand
	for rows.Next() {
		var hand Hand
		if err := rows.Scan(&hand.ID, &hand.SessionID, &hand.ButtonSeat, &hand.HeroSeat, &hand.PlayedAt, &hand.Note); err != nil {
			return nil, fmt.Errorf("scan hand: %w", err)
		}
		out = append(out, hand)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Sequence, err = s.loadSequence(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LoadSequences returns the action sequences of a session's hands in
// play order, paired with their button seats, ready for the stats and
// pattern aggregators. A seat > 0 filters each sequence down to that
// seat's entries.
func (s *Store) LoadSequences(ctx context.Context, sessionID string, seat int) ([]action.Sequence, []int, error) {
	hands, err := s.ListHands(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	sequences := make([]action.Sequence, len(hands))
	buttons := make([]int, len(hands))
	for i, h := range hands {
		seq := h.Sequence
		if seat > 0 {
			seq = seq.BySeat(seat)
		}
		sequences[i] = seq
		buttons[i] = h.ButtonSeat
	}
	return sequences, buttons, nil
}

func (s *Store) loadSequence(ctx context.Context, handID string) (action.Sequence, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ord, seat, street, primitive, sizing, outcome FROM actions WHERE hand_id = ? ORDER BY ord`, handID)
	if err != nil {
		return nil, fmt.Errorf("select actions: %w", err)
	}
	defer rows.Close()

	var seq action.Sequence
	for rows.Next() {
		var (
			e                          action.Entry
			street, prim, siz, outcome string
		)
		if err := rows.Scan(&e.Order, &e.Seat, &street, &prim, &siz, &outcome); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		var ok bool
		if e.Street, ok = action.StreetFromString(street); !ok {
			return nil, fmt.Errorf("hand %s: unknown street %q", handID, street)
		}
		if e.Action.Primitive, ok = action.PrimitiveFromString(prim); !ok {
			return nil, fmt.Errorf("hand %s: unknown primitive %q", handID, prim)
		}
		if e.Action.Sizing, ok = action.SizingFromString(siz); !ok {
			return nil, fmt.Errorf("hand %s: unknown sizing %q", handID, siz)
		}
		if e.Action.Outcome, ok = action.OutcomeFromString(outcome); !ok {
			return nil, fmt.Errorf("hand %s: unknown outcome %q", handID, outcome)
		}
		seq = append(seq, e)
	}
	return seq, rows.Err()
}
