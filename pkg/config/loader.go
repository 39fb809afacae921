package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-seo/internal/logging"
	"github.com/goliatone/go-seo/pkg/page"
)

// RootKey is an optional wrapper key around the whole document.
const RootKey = "sonata_seo"

// ErrEmptyDocument is returned for blank input.
var ErrEmptyDocument = errors.New("config: document is empty")

// Option configures a load.
type Option func(*loader)

type loader struct {
	logger *zap.Logger
	source string
}

// WithLogger reports dropped entries (unknown keys and meta categories).
func WithLogger(logger *zap.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// LoadFile reads and parses a YAML file from disk.
func LoadFile(path string, options ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, path, options...)
}

// LoadFS reads and parses a YAML file from fsys.
func LoadFS(fsys fs.FS, path string, options ...Option) (*Config, error) {
	if fsys == nil {
		return nil, errors.New("config: fs is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, path, options...)
}

// Parse decodes a YAML document.
func Parse(data []byte, options ...Option) (*Config, error) {
	return parse(data, "<input>", options...)
}

func parse(data []byte, source string, options ...Option) (*Config, error) {
	l := &loader{source: source}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	l.logger = logging.OrNop(l.logger)

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", source, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, l.errorf(root, "document must be a mapping")
	}
	if len(root.Content) == 2 && root.Content[0].Value == RootKey {
		root = root.Content[1]
		if root.Kind != yaml.MappingNode {
			return nil, l.errorf(root, "%s must be a mapping", RootKey)
		}
	}

	cfg := Default()
	err := l.eachPair(root, func(key string, value *yaml.Node) error {
		switch key {
		case "encoding":
			encoding, err := l.scalar(value, key)
			if err != nil {
				return err
			}
			if encoding = strings.TrimSpace(encoding); encoding != "" {
				cfg.Encoding = encoding
			}
			return nil
		case "page":
			return l.decodePage(value, cfg)
		default:
			l.skip(value, key)
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *loader) decodePage(node *yaml.Node, cfg *Config) error {
	if node.Kind != yaml.MappingNode {
		return l.errorf(node, "page must be a mapping")
	}
	return l.eachPair(node, func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "title":
			cfg.Title, err = l.scalar(value, key)
		case "separator":
			cfg.Separator, err = l.scalar(value, key)
		case "canonical":
			cfg.LinkCanonical, err = l.scalar(value, key)
		case "metas":
			err = l.decodeMetas(value, cfg)
		case "html":
			cfg.HTMLAttributes, err = l.stringMap(value, key)
		case "head":
			cfg.HeadAttributes, err = l.stringMap(value, key)
		case "alternates":
			cfg.LangAlternates, err = l.stringMap(value, key)
		case "oembed":
			cfg.OEmbedLinks, err = l.stringMap(value, key)
		default:
			l.skip(value, "page."+key)
		}
		return err
	})
}

func (l *loader) decodeMetas(node *yaml.Node, cfg *Config) error {
	if node.Kind != yaml.MappingNode {
		return l.errorf(node, "metas must be a mapping")
	}
	return l.eachPair(node, func(category string, value *yaml.Node) error {
		if !page.IsCategory(category) {
			l.logger.Warn("dropping unknown meta category",
				zap.String("source", l.source),
				zap.String("category", category),
				zap.Int("line", value.Line),
			)
			return nil
		}
		if value.Kind != yaml.MappingNode {
			return l.errorf(value, "metas.%s must be a mapping", category)
		}

		entries := cfg.Metas[category]
		if entries == nil {
			entries = page.NewOrdered[page.Meta]()
			cfg.Metas[category] = entries
		}
		return l.eachPair(value, func(name string, raw *yaml.Node) error {
			meta, err := l.decodeMeta(raw, category+"."+name)
			if err != nil {
				return err
			}
			entries.Set(name, meta)
			return nil
		})
	})
}

// decodeMeta accepts either a scalar content or a mapping with `content` and
// `extras`.
func (l *loader) decodeMeta(node *yaml.Node, path string) (page.Meta, error) {
	meta := page.Meta{Extras: page.NewOrdered[string]()}
	switch node.Kind {
	case yaml.ScalarNode:
		meta.Content = scalarValue(node)
		return meta, nil
	case yaml.MappingNode:
		err := l.eachPair(node, func(key string, value *yaml.Node) error {
			var err error
			switch key {
			case "content":
				meta.Content, err = l.scalar(value, path+".content")
			case "extras":
				meta.Extras, err = l.stringMap(value, path+".extras")
			default:
				l.skip(value, path+"."+key)
			}
			return err
		})
		return meta, err
	default:
		return page.Meta{}, l.errorf(node, "metas.%s must be a string or mapping", path)
	}
}

func (l *loader) stringMap(node *yaml.Node, path string) (*page.Ordered[string], error) {
	out := page.NewOrdered[string]()
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return out, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, l.errorf(node, "%s must be a mapping", path)
	}
	err := l.eachPair(node, func(key string, value *yaml.Node) error {
		s, err := l.scalar(value, path+"."+key)
		if err != nil {
			return err
		}
		out.Set(key, s)
		return nil
	})
	return out, err
}

func (l *loader) scalar(node *yaml.Node, path string) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", l.errorf(node, "%s must be a string", path)
	}
	return scalarValue(node), nil
}

func (l *loader) eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			return l.errorf(key, "mapping keys must be strings")
		}
		if err := fn(key.Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) skip(node *yaml.Node, path string) {
	l.logger.Warn("ignoring unknown config key",
		zap.String("source", l.source),
		zap.String("key", path),
		zap.Int("line", node.Line),
	)
}

func (l *loader) errorf(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("config: %s:%d: %s", l.source, node.Line, fmt.Sprintf(format, args...))
}

func scalarValue(node *yaml.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
