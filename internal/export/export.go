// Package export mirrors each user's deposit collection to a per-user JSON
// document after every successful commit, the way the original tracker
// synced its data directory to a remote dataset in the background.
//
// The mirror is an at-least-once, fire-and-forget replica: Notify enqueues
// a snapshot and returns immediately, a single worker goroutine drains the
// queue, and failures are logged but never surfaced to the request that
// triggered them. The core's consistency guarantees do not depend on the
// mirror; a lost snapshot is overwritten by the next one for the same user.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/coffeenote/go-deposit-backend/internal/domain"
)

var (
	// exportsTotal counts snapshot writes by outcome ("ok" / "error" /
	// "dropped").
	exportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deposit_exports_total",
			Help: "Total number of deposit snapshot exports by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(exportsTotal)
}

// snapshot is one queued write: a username and its full collection at the
// time of the triggering commit.
type snapshot struct {
	username string
	deposits []domain.Deposit
}

// Mirror writes per-user JSON documents under a directory. It implements
// services.Exporter.
type Mirror struct {
	dir  string
	ch   chan snapshot
	done chan struct{}
}

// NewMirror creates the target directory if needed and starts the worker.
// queueSize bounds the number of pending snapshots; once full, new
// notifications are dropped (and counted) rather than blocking the request
// path. Values < 1 are coerced to 64.
func NewMirror(dir string, queueSize int) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if queueSize < 1 {
		queueSize = 64
	}
	m := &Mirror{
		dir:  dir,
		ch:   make(chan snapshot, queueSize),
		done: make(chan struct{}),
	}
	go m.run()
	return m, nil
}

// Notify enqueues a snapshot without blocking. The slice is written as-is;
// callers pass the freshly listed collection and do not mutate it after.
func (m *Mirror) Notify(username string, deposits []domain.Deposit) {
	select {
	case m.ch <- snapshot{username: username, deposits: deposits}:
	default:
		exportsTotal.WithLabelValues("dropped").Inc()
		log.Warn().Str("user", username).Msg("export queue full, snapshot dropped")
	}
}

// Close stops accepting snapshots, drains the queue, and waits for the
// worker to finish the writes already enqueued.
func (m *Mirror) Close() {
	close(m.ch)
	<-m.done
}

// run drains the queue, one write at a time.
func (m *Mirror) run() {
	defer close(m.done)
	for snap := range m.ch {
		if err := m.write(snap); err != nil {
			exportsTotal.WithLabelValues("error").Inc()
			log.Error().Err(err).Str("user", snap.username).Msg("export snapshot failed")
			continue
		}
		exportsTotal.WithLabelValues("ok").Inc()
	}
}

// write renders the collection as an indented JSON array (the original's
// document layout) and replaces the user's file atomically via a rename.
func (m *Mirror) write(snap snapshot) error {
	deposits := snap.deposits
	if deposits == nil {
		deposits = []domain.Deposit{}
	}
	data, err := json.MarshalIndent(deposits, "", "  ")
	if err != nil {
		return err
	}

	target := filepath.Join(m.dir, snap.username+".json")
	tmp, err := os.CreateTemp(m.dir, snap.username+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}
