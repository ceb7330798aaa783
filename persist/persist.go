// Package persist loads and saves an editor document through a storage.Store.
//
// The document is kept in a single named slot as its raw JSON form. Content
// that cannot be read back falls back to an empty document so editing always
// starts.
package persist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/iw2rmb/draftmark/document"
	"github.com/iw2rmb/draftmark/internal/logging"
	"github.com/iw2rmb/draftmark/storage"
)

// DefaultKey is the slot the document is stored under.
const DefaultKey = "draftEditorContent"

// Persister reads and writes the serialized document.
//
// Store is required. Key defaults to DefaultKey. Logger and Diagnostics may be
// nil. A Persister is safe for concurrent use; writes are serialized.
type Persister struct {
	Store       storage.Store
	Key         string
	Logger      *slog.Logger
	Diagnostics io.Writer

	mu   sync.Mutex
	last string
}

func (p *Persister) key() string {
	if p.Key == "" {
		return DefaultKey
	}
	return p.Key
}

func (p *Persister) logger() *slog.Logger {
	if p.Logger == nil {
		return logging.Discard()
	}
	return p.Logger
}

// Load returns an editor state built from the stored document, or an empty
// one when nothing usable is stored.
func (p *Persister) Load(ctx context.Context, opt document.Options) document.EditorState {
	log := p.logger()
	raw, ok, err := p.Store.Get(ctx, p.key())
	switch {
	case err != nil:
		log.Warn("failed to read stored document", "key", p.key(), "error", err)
		return document.NewEmpty(opt)
	case !ok || strings.TrimSpace(raw) == "":
		log.Debug("no stored document", "key", p.key())
		return document.NewEmpty(opt)
	}

	c, err := document.UnmarshalRaw([]byte(raw))
	if err != nil {
		log.Warn("stored document is malformed, starting empty", "key", p.key(), "error", err)
		return document.NewEmpty(opt)
	}
	p.mu.Lock()
	p.last = raw
	p.mu.Unlock()
	log.Info("loaded document", "key", p.key(), "blocks", c.BlockCount(), "bytes", len(raw))
	return document.NewWithContent(c, opt)
}

// Autosave stores c when it has text. Unchanged content is not rewritten.
func (p *Persister) Autosave(ctx context.Context, c document.Content) error {
	if !c.HasText() {
		return nil
	}
	data, err := document.MarshalRaw(c)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if string(data) == p.last {
		return nil
	}
	if err := p.write(ctx, string(data)); err != nil {
		p.logger().Error("autosave failed", "key", p.key(), "error", err)
		return err
	}
	p.logger().Debug("autosaved document", "key", p.key(), "bytes", len(data))
	return nil
}

// Save stores c unconditionally and writes its serialized form to
// Diagnostics. The serialized form is returned.
func (p *Persister) Save(ctx context.Context, c document.Content) (string, error) {
	data, err := document.MarshalRaw(c)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.write(ctx, string(data)); err != nil {
		p.logger().Error("save failed", "key", p.key(), "error", err)
		return "", err
	}
	if p.Diagnostics != nil {
		if _, err := fmt.Fprintln(p.Diagnostics, string(data)); err != nil {
			p.logger().Warn("failed to write diagnostics", "error", err)
		}
	}
	p.logger().Info("saved document", "key", p.key(), "bytes", len(data), "content", string(data))
	return string(data), nil
}

// Clear removes the stored document.
func (p *Persister) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.Store.Remove(ctx, p.key()); err != nil {
		return fmt.Errorf("clearing %q: %w", p.key(), err)
	}
	p.last = ""
	p.logger().Info("cleared stored document", "key", p.key())
	return nil
}

// Export returns the stored serialized document.
func (p *Persister) Export(ctx context.Context) (string, bool, error) {
	raw, ok, err := p.Store.Get(ctx, p.key())
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", p.key(), err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false, nil
	}
	return raw, true, nil
}

// write stores data and records it as the last written form. p.mu must be
// held.
func (p *Persister) write(ctx context.Context, data string) error {
	if err := p.Store.Set(ctx, p.key(), data); err != nil {
		if errors.Is(err, storage.ErrClosed) {
			return err
		}
		return fmt.Errorf("writing %q: %w", p.key(), err)
	}
	p.last = data
	return nil
}
