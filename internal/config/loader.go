package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultIncludeDepth limits nested includes.
const DefaultIncludeDepth = 8

// OSFS reads files from the operating system by their native paths.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile implements fs.ReadFileFS.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Loader reads preset files and applies environment overrides.
type Loader struct {
	fsys     fs.FS
	env      *EnvLoader
	maxDepth int
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS reads files from fsys instead of the operating system.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithEnv applies overrides from env. A nil env disables overrides.
func WithEnv(env *EnvLoader) Option {
	return func(l *Loader) {
		l.env = env
	}
}

// WithIncludeDepth sets the include nesting limit.
func WithIncludeDepth(depth int) Option {
	return func(l *Loader) {
		l.maxDepth = depth
	}
}

// NewLoader creates a loader reading from the operating system with
// DIFFTEXT_ environment overrides.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fsys:     OSFS{},
		env:      NewEnvLoader(EnvPrefix),
		maxDepth: DefaultIncludeDepth,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the preset file at path.
func Load(path string) (*File, error) {
	return NewLoader().Load(path)
}

// Load reads the preset file at name, its includes and the environment
// overrides.
func (l *Loader) Load(name string) (*File, error) {
	raw, err := l.loadWithIncludes(name, l.maxDepth)
	if err != nil {
		return nil, err
	}
	if l.env != nil {
		raw = DeepMerge(raw, l.env.Load())
	}
	return Decode(raw)
}

func (l *Loader) loadWithIncludes(name string, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepthExceeded, name)
	}

	raw, err := l.read(name)
	if err != nil {
		return nil, err
	}

	includes, ok := raw["include"]
	if !ok {
		return raw, nil
	}
	delete(raw, "include")

	var list []string
	switch v := includes.(type) {
	case string:
		list = []string{v}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: include must be a string or a list of strings", ErrInvalidPreset)
			}
			list = append(list, s)
		}
	default:
		return nil, fmt.Errorf("%w: include must be a string or a list of strings, got %T", ErrInvalidPreset, includes)
	}

	merged := make(map[string]any)
	for _, inc := range list {
		incName := inc
		if !filepath.IsAbs(inc) {
			incName = join(name, inc)
		}
		incRaw, err := l.loadWithIncludes(incName, depth-1)
		if err != nil {
			return nil, fmt.Errorf("loading include %s: %w", incName, err)
		}
		merged = DeepMerge(merged, incRaw)
	}
	return DeepMerge(merged, raw), nil
}

// read decodes one file by its extension.
func (l *Loader) read(name string) (map[string]any, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", name, err)
		}
		return nil, fmt.Errorf("reading config file %s: %w", name, err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return raw, nil
}

// join resolves an include relative to the including file.
func join(from, name string) string {
	return filepath.Join(filepath.Dir(from), name)
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst; maps merge recursively.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}
