package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/freshcart/freshcart/internal/model"
)

// Collection keys. Each key maps to one JSON file in the data directory.
const (
	CollectionProducts = "products"
	CollectionUsers    = "users"
	CollectionOrders   = "orders"
)

// Diagnostics counts persistence failures the store absorbed. Loads and
// saves never fail their caller; these counters are the observable channel
// for what got swallowed.
type Diagnostics struct {
	LoadErrors atomic.Int64
	SaveErrors atomic.Int64
}

// Store persists named collections as JSON files under a single directory.
// A load that cannot read or decode its file returns the caller's default; a
// save that cannot encode or write logs a warning and moves on. Same-process
// access is serialized with a mutex; cross-process writers race with
// last-write-wins semantics.
type Store struct {
	mu   sync.Mutex
	dir  string
	diag Diagnostics
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Diagnostics() *Diagnostics {
	return &s.diag
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) has(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

// Load reads a collection, falling back to def when the file is absent,
// unreadable, or corrupt.
func Load[T any](s *Store, collection string, def T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.diag.LoadErrors.Add(1)
			log.Printf("store: read %s: %v (using default)", collection, err)
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.diag.LoadErrors.Add(1)
		log.Printf("store: decode %s: %v (using default)", collection, err)
		return def
	}
	return v
}

// Save writes a collection best-effort.
func Save[T any](s *Store, collection string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.diag.SaveErrors.Add(1)
		log.Printf("store: encode %s: %v (write skipped)", collection, err)
		return
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		s.diag.SaveErrors.Add(1)
		log.Printf("store: write %s: %v (write skipped)", collection, err)
	}
}

func (s *Store) Products() []model.Product {
	return Load(s, CollectionProducts, []model.Product{})
}

func (s *Store) SetProducts(products []model.Product) {
	Save(s, CollectionProducts, products)
}

func (s *Store) Users() []model.User {
	return Load(s, CollectionUsers, []model.User{})
}

func (s *Store) SetUsers(users []model.User) {
	Save(s, CollectionUsers, users)
}

func (s *Store) Orders() []model.Order {
	return Load(s, CollectionOrders, []model.Order{})
}

func (s *Store) SetOrders(orders []model.Order) {
	Save(s, CollectionOrders, orders)
}
