// Package file loads the catalog from a JSON file and hot-reloads it when the
// file changes on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"storefront-demo/internal/domains/catalog/domain"
	"storefront-demo/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

type productRecord struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `json:"price"`
	OldPrice   float64 `json:"oldPrice"`
	Rating     float64 `json:"rating"`
	SalesLabel string  `json:"salesLabel"`
	Badge      string  `json:"badge,omitempty"`
	BadgeKind  string  `json:"badgeKind,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	HasVideo   bool    `json:"hasVideo"`
}

type snapshot struct {
	products []*domain.Product
	byID     map[int64]int
}

// Repository serves catalog reads from the last successfully parsed snapshot.
// A failed reload keeps the previous snapshot in place.
type Repository struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	mu   sync.RWMutex
	snap *snapshot
}

// NewRepository parses the catalog file and starts watching it for changes.
func NewRepository(path string, logger *slog.Logger) (*Repository, error) {
	r := &Repository{path: path, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start catalog watcher: %w", err)
	}
	// Watch the directory: editors replace files, which drops the watch on the
	// file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch catalog directory: %w", err)
	}
	r.watcher = watcher
	go r.watch()
	return r, nil
}

// Reload re-parses the catalog file and swaps the snapshot atomically.
func (r *Repository) Reload() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}
	snap := &snapshot{byID: map[int64]int{}}
	for _, rec := range records {
		product, err := domain.NewProduct(domain.Product{
			ID:         rec.ID,
			Name:       rec.Name,
			ImageURL:   rec.ImageURL,
			Price:      rec.Price,
			OldPrice:   rec.OldPrice,
			Rating:     rec.Rating,
			SalesLabel: rec.SalesLabel,
			Badge:      rec.Badge,
			BadgeKind:  rec.BadgeKind,
			Brand:      rec.Brand,
			HasVideo:   rec.HasVideo,
		})
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("skipping invalid catalog entry",
					slog.Int64("product.id", rec.ID), slog.String("error", err.Error()))
			}
			continue
		}
		if _, exists := snap.byID[product.ID]; exists {
			if r.logger != nil {
				r.logger.Warn("duplicate catalog id, keeping first occurrence", slog.Int64("product.id", product.ID))
			}
			continue
		}
		snap.byID[product.ID] = len(snap.products)
		snap.products = append(snap.products, product)
	}
	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
	return nil
}

func (r *Repository) watch() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := r.Reload(); err != nil {
				if r.logger != nil {
					r.logger.Warn("catalog reload failed, keeping previous snapshot",
						slog.String("path", r.path), slog.String("error", err.Error()))
				}
				continue
			}
			if r.logger != nil {
				r.logger.Info("catalog reloaded", slog.String("path", r.path))
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			if r.logger != nil {
				r.logger.Warn("catalog watcher error", slog.String("error", err.Error()))
			}
		}
	}
}

// Close stops the file watcher.
func (r *Repository) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	snap := r.snap
	r.mu.RUnlock()
	pos, ok := snap.byID[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *snap.products[pos]
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	snap := r.snap
	r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(snap.products))
	for _, p := range snap.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}
