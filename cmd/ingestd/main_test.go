package main

import (
	"testing"

	"github.com/oscillant-data/vibration.report/internal/vibration"
)

type captureSink struct {
	batches [][]vibration.Row
}

func (s *captureSink) InsertRows(rows []vibration.Row) error {
	batch := make([]vibration.Row, len(rows))
	copy(batch, rows)
	s.batches = append(s.batches, batch)
	return nil
}

func TestIngestSinkWiring(t *testing.T) {
	pipe, err := vibration.NewPipeline(vibration.DefaultParams(), vibration.DefaultAxisMap, 2, 1)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	store := &captureSink{}
	sink := &ingestSink{pipe: pipe, batch: vibration.NewPersister(store, 3)}

	// Control and malformed messages must not reach the batch.
	sink.OnMessage([]byte("Authenticated"))
	sink.OnMessage([]byte("garbage"))
	sink.OnMessage([]byte(`{"a":[1,1,1],"vib":[0,0,0]}`))
	sink.OnMessage([]byte(`{"a":[1,1,1],"vib":[0,0,0]}`))

	if len(store.batches) != 0 {
		t.Fatalf("flushed early: %v", store.batches)
	}

	// Third accepted sample triggers the batch, close drains nothing.
	sink.OnMessage([]byte(`{"a":[1,1,1],"vib":[0,0,0]}`))
	sink.OnClose()

	if len(store.batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(store.batches))
	}
	if n := len(store.batches[0]); n != 3 {
		t.Errorf("batch has %d rows, want 3", n)
	}
	if got := store.batches[0][2].Sequence; got != 3 {
		t.Errorf("last row sequence = %d, want 3", got)
	}
	if got := store.batches[0][0].SensorID; got != 2 {
		t.Errorf("row sensor id = %d, want 2", got)
	}
}
