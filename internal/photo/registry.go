// Package photo turns a picked file into a session-scoped displayable reference.
//
// A Registry plays the part a browser's object-URL table plays for an
// uploaded file: it mints an opaque ID per file, holds the bytes until the
// reference is revoked, and releases everything on Close.
package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// IDPrefix is the scheme every reference ID starts with.
const IDPrefix = "photo:"

var (
	// ErrRevoked is returned when a reference's bytes were already released.
	ErrRevoked = errors.New("photo: reference revoked")
	// ErrNotFound is returned for IDs the registry never issued or already dropped.
	ErrNotFound = errors.New("photo: reference not found")
)

// Ref is a displayable reference to an uploaded image.
type Ref struct {
	ID   string
	Name string // base name of the picked file
	Size int

	mu      sync.Mutex
	data    []byte
	revoked bool
	decoded bool
	img     image.Image
	err     error
}

// Image decodes the referenced bytes on first use and caches the result.
// Files that are not images still have a valid reference; only decoding fails.
func (r *Ref) Image() (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revoked {
		return nil, ErrRevoked
	}
	if !r.decoded {
		r.img, _, r.err = image.Decode(bytes.NewReader(r.data))
		if r.err != nil {
			r.err = fmt.Errorf("decode %s: %w", r.Name, r.err)
		}
		r.decoded = true
	}
	return r.img, r.err
}

// Revoked reports whether the reference has been released.
func (r *Ref) Revoked() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revoked
}

func (r *Ref) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked = true
	r.data = nil
	r.img = nil
}

// Registry issues and releases references. Safe for concurrent use: Create
// runs inside a Bubble Tea command while Revoke runs in Update.
type Registry struct {
	mu   sync.Mutex
	refs map[string]*Ref
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{refs: make(map[string]*Ref)}
}

// Create reads path and returns a new live reference to its contents.
// No type or size checks are applied.
func (g *Registry) Create(path string) (*Ref, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	ref := &Ref{
		ID:   IDPrefix + uuid.NewString(),
		Name: filepath.Base(path),
		Size: len(data),
		data: data,
	}
	g.mu.Lock()
	g.refs[ref.ID] = ref
	g.mu.Unlock()
	return ref, nil
}

// Lookup returns the live reference for id.
func (g *Registry) Lookup(id string) (*Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ref, ok := g.refs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ref, nil
}

// Revoke releases the bytes held for id. Returns false if id is unknown.
func (g *Registry) Revoke(id string) bool {
	g.mu.Lock()
	ref, ok := g.refs[id]
	delete(g.refs, id)
	g.mu.Unlock()
	if !ok {
		return false
	}
	ref.release()
	return true
}

// Live returns the number of unreleased references.
func (g *Registry) Live() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.refs)
}

// Close releases every live reference.
func (g *Registry) Close() {
	g.mu.Lock()
	refs := g.refs
	g.refs = make(map[string]*Ref)
	g.mu.Unlock()
	for _, ref := range refs {
		ref.release()
	}
	if len(refs) > 0 {
		log.Printf("photo.Registry.Close: released %d reference(s)", len(refs))
	}
}
