// Command ingestd runs the vibration ingest daemon: it connects to the
// sensor gateway over a persistent websocket, runs every reading
// through the per-axis filter/integrate/RMS pipeline, and persists
// batched rows to the SQLite samples store the dashboard reads.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oscillant-data/vibration.report/internal/config"
	"github.com/oscillant-data/vibration.report/internal/db"
	"github.com/oscillant-data/vibration.report/internal/retry"
	"github.com/oscillant-data/vibration.report/internal/stream"
	"github.com/oscillant-data/vibration.report/internal/version"
	"github.com/oscillant-data/vibration.report/internal/vibration"
)

var (
	dbPath   = flag.String("db", "", "SQLite database path (overrides VIBRATION_DB)")
	url      = flag.String("url", "", "sensor websocket URL (overrides SENSOR_WS_URL)")
	sensorID = flag.Int("sensor", 0, "sensor identifier (overrides SENSOR_ID)")
	verbose  = flag.Bool("verbose", false, "log per-batch diagnostics and per-sample telemetry")
)

func main() {
	flag.Parse()
	log.Printf("ingestd %s", version.String())

	cfg := config.FromEnv()
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *url != "" {
		cfg.SensorURL = *url
	}
	if *sensorID != 0 {
		if config.ValidSensorID(*sensorID) {
			cfg.SensorID = *sensorID
		} else {
			log.Printf("-sensor %d is not a deployed sensor, keeping sensor %d", *sensorID, cfg.SensorID)
		}
	}

	var diag, trace io.Writer
	if *verbose {
		diag = os.Stderr
		trace = os.Stderr
	}
	vibration.SetLogWriters(os.Stderr, diag, trace)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The process cannot run without its store: retry briefly, then
	// give up with a logged cause.
	var store *db.DB
	open := retry.Backoff{MaxAttempts: 3, MinInterval: 2 * time.Second, MaxInterval: 30 * time.Second}
	if err := open.Run(ctx, "open sample store", func(ctx context.Context) error {
		var err error
		store, err = db.Open(cfg.DBPath)
		return err
	}); err != nil {
		log.Fatalf("cannot open sample store %s: %v", cfg.DBPath, err)
	}
	defer store.Close()

	// Seed the sequence counter before any sample is accepted so new
	// rows never collide with previously persisted ones.
	last, err := store.MaxSequence()
	if err != nil {
		log.Fatalf("cannot query max sample: %v", err)
	}
	log.Printf("sensor %d resuming from sample %d", cfg.SensorID, last+1)

	pipe, err := vibration.NewPipeline(vibration.DefaultParams(), vibration.DefaultAxisMap, cfg.SensorID, last+1)
	if err != nil {
		log.Fatalf("cannot build pipeline: %v", err)
	}
	persist := vibration.NewPersister(store, vibration.DefaultBatchSize)

	mgr := stream.New(stream.Config{
		URL:      cfg.SensorURL,
		AuthLine: cfg.AuthLine,
		Dial:     retry.Backoff{MaxAttempts: 5, MinInterval: time.Second, MaxInterval: 30 * time.Second},
		Handler:  &ingestSink{pipe: pipe, batch: persist},
	})

	if err := mgr.Run(ctx); err != nil {
		stats := pipe.Stats()
		log.Fatalf("stream terminated (accepted %d of %d messages): %v",
			stats.Accepted, stats.Received, err)
	}

	stats := pipe.Stats()
	log.Printf("ingest stopped: received=%d accepted=%d control=%d malformed=%d outliers=%d",
		stats.Received, stats.Accepted, stats.Control, stats.Malformed, stats.Outliers)
}

// ingestSink adapts the pipeline and persister to the stream handler.
// All three callbacks run on the stream's read goroutine, preserving
// the strict per-sample ordering the pipeline state requires.
type ingestSink struct {
	pipe  *vibration.Pipeline
	batch *vibration.Persister
}

func (s *ingestSink) OnMessage(msg []byte) {
	if row := s.pipe.Process(msg); row != nil {
		s.batch.Append(*row)
	}
}

func (s *ingestSink) OnError(err error) {
	// Any in-flight flush rolled back inside the store; nothing partial
	// was committed. The pipeline stays live for the drain.
	log.Printf("stream error: %v", err)
}

func (s *ingestSink) OnClose() {
	pending := s.batch.Pending()
	if err := s.batch.Close(); err != nil {
		log.Printf("final flush failed, %d rows lost: %v", pending, err)
	}
}
