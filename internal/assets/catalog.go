// Package assets loads the sprite catalog the game cores draw with.
//
// Loading happens in the background. Until every sprite is loaded the catalog
// reports not ready and cores draw flat-color blocks instead.
package assets

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

//go:embed sprites.yaml
var defaultSprites []byte

type spriteFile struct {
	Sprites map[string]spriteDef `yaml:"sprites"`
}

type spriteDef struct {
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

// Catalog is a named set of animated sprites. It implements core.SpriteSource
// and is safe for concurrent use.
type Catalog struct {
	path   string
	logger *log.Logger

	mu        sync.RWMutex
	sprites   map[string][]core.Sprite
	callbacks []func()

	ready atomic.Bool
	done  chan struct{}
	once  sync.Once
}

// NewCatalog creates an empty catalog. customPath overrides the search path.
func NewCatalog(customPath string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{
		path:    customPath,
		logger:  logger,
		sprites: make(map[string][]core.Sprite),
		done:    make(chan struct{}),
	}
}

// Ready reports whether every sprite has been loaded.
func (c *Catalog) Ready() bool {
	return c.ready.Load()
}

// Done is closed once loading succeeds.
func (c *Catalog) Done() <-chan struct{} {
	return c.done
}

// Sprite returns a frame of a named sprite. Frames wrap.
func (c *Catalog) Sprite(name string, frame int) (core.Sprite, bool) {
	if !c.Ready() {
		return core.Sprite{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	frames := c.sprites[name]
	if len(frames) == 0 {
		return core.Sprite{}, false
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)], true
}

// Names returns the loaded sprite names.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.sprites))
	for n := range c.sprites {
		names = append(names, n)
	}
	return names
}

// OnAllLoaded registers fn to run once the catalog is ready.
// If it already is, fn runs immediately.
func (c *Catalog) OnAllLoaded(fn func()) {
	c.mu.Lock()
	if !c.Ready() {
		c.callbacks = append(c.callbacks, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

// Start loads the catalog in a goroutine. Failures are logged and leave the
// catalog not ready.
func (c *Catalog) Start(ctx context.Context) {
	go func() {
		if err := c.Load(ctx); err != nil {
			c.logger.Warn("sprites unavailable, using flat blocks", "err", err)
		}
	}()
}

// Load reads and parses the catalog, then marks it ready and fires the
// OnAllLoaded callbacks. Only the first successful Load has any effect.
func (c *Catalog) Load(ctx context.Context) error {
	data, src, err := c.read()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("assets: load canceled: %w", err)
	}

	sprites, err := Parse(data)
	if err != nil {
		return fmt.Errorf("assets: %s: %w", src, err)
	}

	c.once.Do(func() {
		c.mu.Lock()
		c.sprites = sprites
		c.ready.Store(true)
		callbacks := c.callbacks
		c.callbacks = nil
		c.mu.Unlock()

		close(c.done)
		c.logger.Debug("sprites loaded", "source", src, "count", len(sprites))
		for _, fn := range callbacks {
			fn()
		}
	})
	return nil
}

// read follows the config search order: custom path, ~/.arcade/sprites.yaml,
// ./configs/sprites.yaml, then the embedded catalog.
func (c *Catalog) read() ([]byte, string, error) {
	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, "", fmt.Errorf("assets: read %s: %w", c.path, err)
		}
		return data, c.path, nil
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".arcade", "sprites.yaml"))
	}
	candidates = append(candidates, filepath.Join("configs", "sprites.yaml"))

	for _, p := range candidates {
		if data, err := os.ReadFile(p); err == nil {
			return data, p, nil
		}
	}
	return defaultSprites, "embedded", nil
}

// Parse decodes a sprite catalog.
func Parse(data []byte) (map[string][]core.Sprite, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sprites: %w", err)
	}
	if len(f.Sprites) == 0 {
		return nil, fmt.Errorf("parse sprites: catalog is empty")
	}

	out := make(map[string][]core.Sprite, len(f.Sprites))
	for name, def := range f.Sprites {
		color, ok := core.ParseColor(def.Color)
		if !ok && def.Color != "" {
			return nil, fmt.Errorf("sprite %q: unknown color %q", name, def.Color)
		}
		if len(def.Frames) == 0 {
			return nil, fmt.Errorf("sprite %q: no frames", name)
		}
		frames := make([]core.Sprite, 0, len(def.Frames))
		for _, fr := range def.Frames {
			frames = append(frames, core.Sprite{Rows: fr, Color: color})
		}
		out[name] = frames
	}
	return out, nil
}
