package storage

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"pixelart/internal/drawing"
)

// AppKey is the key the blob lives under.
const AppKey = "pixel-art"

// Library is the persisted blob plus the store it came from.
type Library struct {
	kv   KV
	log  *zap.Logger
	blob Blob
}

// Open reads the blob from kv. A missing blob starts an empty library; a
// blob that cannot be parsed is logged and replaced by an empty one so the
// editor can still start.
func Open(kv KV, log *zap.Logger) (*Library, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Library{kv: kv, log: log, blob: Blob{Stored: []Record{}}}

	data, ok, err := kv.Get(AppKey)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", AppKey, err)
	}
	if !ok {
		log.Info("no saved drawings, initialising storage")
		return l, l.flush()
	}

	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		log.Warn("saved drawings unreadable, starting empty", zap.Error(err))
		return l, nil
	}
	if blob.Stored == nil {
		blob.Stored = []Record{}
	}
	l.blob = blob
	log.Info("storage loaded", zap.Int("stored", len(blob.Stored)), zap.Bool("current", blob.Current != nil))
	return l, nil
}

// Restore returns the last open drawing applied on top of base.
func (l *Library) Restore(base drawing.State) drawing.State {
	if l.blob.Current != nil {
		if err := l.blob.Current.Validate(); err != nil {
			l.log.Warn("ignoring last drawing", zap.Error(err))
		}
	}
	return Load(l.blob, base)
}

// SetCurrent remembers s as the last open drawing.
func (l *Library) SetCurrent(s drawing.State) error {
	rec := Save(s)
	l.blob.Current = &rec
	return l.flush()
}

// Add appends s to the saved drawings and makes it current.
func (l *Library) Add(s drawing.State) error {
	rec := Save(s)
	l.blob.Stored = append(l.blob.Stored, rec)
	l.blob.Current = &rec
	l.log.Info("drawing saved", zap.Int("index", len(l.blob.Stored)-1))
	return l.flush()
}

// Drawings returns the saved drawings.
func (l *Library) Drawings() []Record {
	return l.blob.Stored
}

// Get returns saved drawing i.
func (l *Library) Get(i int) (Record, error) {
	if i < 0 || i >= len(l.blob.Stored) {
		return Record{}, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	rec := l.blob.Stored[i]
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Remove deletes saved drawing i.
func (l *Library) Remove(i int) error {
	if i < 0 || i >= len(l.blob.Stored) {
		return fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	stored := make([]Record, 0, len(l.blob.Stored)-1)
	stored = append(stored, l.blob.Stored[:i]...)
	l.blob.Stored = append(stored, l.blob.Stored[i+1:]...)
	l.log.Info("drawing deleted", zap.Int("index", i))
	return l.flush()
}

func (l *Library) flush() error {
	data, err := json.Marshal(l.blob)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", AppKey, err)
	}
	if err := l.kv.Set(AppKey, data); err != nil {
		return fmt.Errorf("writing %s: %w", AppKey, err)
	}
	return nil
}
