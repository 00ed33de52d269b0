package session

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "docnova.session")

// Persistence is the key-value boundary the session survives restarts behind.
// Values are raw JSON.
type Persistence interface {
	Get(key string) (jx.Raw, bool, error)
	Set(key string, value jx.Raw) error
	Delete(key string) error
}

const (
	KeyToken = "token"
	KeyUser  = "user"
)

// FileStore keeps the persisted session in a single JSON file. A missing or
// unreadable file starts an empty store, persistence must never take the
// application down.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]jx.Raw
}

func OpenFile(path string) *FileStore {
	s := &FileStore{path: path, entries: map[string]jx.Raw{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("can't read session file %s: %v", path, err)
		}
		return s
	}

	if err := s.load(data); err != nil {
		logger.Warnf("discarding corrupt session file %s: %v", path, err)
		s.entries = map[string]jx.Raw{}
	}
	return s
}

func (s *FileStore) load(data []byte) error {
	d := jx.DecodeBytes(data)
	return d.Obj(func(d *jx.Decoder, key string) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		cp := make(jx.Raw, len(raw))
		copy(cp, raw)
		s.entries[key] = cp
		return nil
	})
}

func (s *FileStore) Get(key string) (jx.Raw, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *FileStore) Set(key string, value jx.Raw) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	e := &jx.Encoder{}
	e.ObjStart()
	for k, v := range s.entries {
		e.FieldStart(k)
		e.Raw(v)
	}
	e.ObjEnd()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "session dir")
		}
	}
	if err := os.WriteFile(s.path, e.Bytes(), 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	return nil
}

// Memory is an in-process Persistence for tests.
type Memory struct {
	mu      sync.Mutex
	entries map[string]jx.Raw
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]jx.Raw{}}
}

func (m *Memory) Get(key string) (jx.Raw, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *Memory) Set(key string, value jx.Raw) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
