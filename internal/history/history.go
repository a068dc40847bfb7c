package history

// Package history keeps a best-effort sqlite transcript of every message the
// orchestrator appends. The database is opened lazily on first use; if the
// open or an insert fails the mirror logs and stays silent, it never blocks a
// send. The conversation store remains the single source of truth and reads
// never come from here. The default DSN is in-memory, so the transcript does
// not outlive the process.

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/comigor/medchat-go/internal/logger"
	"github.com/comigor/medchat-go/internal/msg"
)

// Mirror writes appended messages to sqlite.
type Mirror struct {
	dsn     string
	once    sync.Once
	db      *sql.DB
	initErr error
}

// NewMirror creates a mirror for the given sqlite DSN. Nothing is opened
// until the first Record call.
func NewMirror(dsn string) *Mirror {
	return &Mirror{dsn: dsn}
}

func (m *Mirror) init() {
	db, err := sql.Open("sqlite", m.dsn)
	if err != nil {
		m.initErr = err
		logger.L.Warn("sqlite open failed; transcript mirror disabled", "error", err)
		return
	}
	// A pooled second connection to :memory: would open a fresh empty DB.
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS transcript (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		message_id TEXT,
		counterpart_id TEXT,
		sender TEXT,
		kind TEXT,
		text TEXT,
		failed INTEGER,
		created_at DATETIME
	);`); err != nil {
		m.initErr = err
		logger.L.Warn("sqlite table creation failed; transcript mirror disabled", "error", err)
		return
	}
	m.db = db
	logger.L.Info("transcript mirror initialized", "dsn", m.dsn)
}

// Record writes one message to the transcript. Failures are logged and
// swallowed.
func (m *Mirror) Record(counterpartID string, message msg.Message) {
	if m == nil {
		return
	}
	m.once.Do(m.init)
	if m.initErr != nil || m.db == nil {
		return
	}
	failed := 0
	if message.Failed {
		failed = 1
	}
	_, err := m.db.Exec(
		`INSERT INTO transcript (message_id, counterpart_id, sender, kind, text, failed, created_at) VALUES (?,?,?,?,?,?,?);`,
		message.ID, counterpartID, string(message.Sender), string(message.Kind), message.Text, failed, message.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		logger.L.Error("failed to record message in transcript", "error", err)
	}
}
