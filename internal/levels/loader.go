// Package levels loads level automata from disk or from the embedded packs
// and sequences them during play.
// This package depends on automaton but automaton does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/levels/formats"
)

// ErrNoLevels is returned when a pack contains no level files.
var ErrNoLevels = errors.New("levels: no level files found")

// Loader loads level files from a file system.
// Files are read in lexical path order, so level01.json comes before level02.yaml.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// WithLogger sets the logger used to report skipped and loaded files.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.Logger = logger
	return l
}

// LoadAll loads and validates every level under Root.
// Any unreadable or invalid file fails the whole pack.
func (l *Loader) LoadAll() ([]*automaton.Definition, error) {
	var files []string

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			l.debug("skipping file", "path", p)
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Strings(files)

	var defs []*automaton.Definition
	for _, p := range files {
		loaded, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}

	if len(defs) == 0 {
		return nil, ErrNoLevels
	}
	return defs, nil
}

// LoadFile loads and validates the levels in a single file.
// Unnamed levels are named after the file.
func (l *Loader) LoadFile(p string) ([]*automaton.Definition, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	defs, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	for i, def := range defs {
		if def.Name == "" {
			def.Name = base
			if len(defs) > 1 {
				def.Name = fmt.Sprintf("%s#%d", base, i)
			}
		}
		if err := automaton.Validate(def); err != nil {
			return nil, fmt.Errorf("levels: %s: level %q is invalid: %w", p, def.Name, err)
		}
		l.debug("loaded level", "path", p, "name", def.Name, "states", def.StateCount())
	}

	return defs, nil
}

func (l *Loader) debug(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, keyvals...)
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// LoadPath loads a single level file or every level in a directory.
func LoadPath(p string, logger *log.Logger) ([]*automaton.Definition, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if info.IsDir() {
		return NewLoader(p).WithLogger(logger).LoadAll()
	}
	return NewLoader(filepath.Dir(p)).WithLogger(logger).LoadFile(filepath.Base(p))
}
