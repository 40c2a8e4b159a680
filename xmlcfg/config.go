// Package xmlcfg holds the serialization preferences of an XML document.
//
// Byte level formatting (indentation, declaration, empty element style) is not part of the
// structural contract of a document, but preserving the preferences detected on input keeps
// re-serialized files byte-comparable with their originals wherever possible.
package xmlcfg

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type contextKey string

func (c contextKey) String() string {
	return "xmlcfg-context-key-" + string(c)
}

const configContextKey = contextKey("config")

// DefaultDeclaration is the declaration written when a document did not provide its own.
const DefaultDeclaration = `version="1.0" encoding="utf-8"`

type IndentationStyle string

const (
	IndentationStyleSpace IndentationStyle = "space"
	IndentationStyleTab   IndentationStyle = "tab"
	IndentationStyleNone  IndentationStyle = "none"
)

func (i IndentationStyle) ToIndent() string {
	switch i {
	case IndentationStyleSpace:
		return " "
	case IndentationStyleTab:
		return "\t"
	default:
		return ""
	}
}

type Config struct {
	Indentation          int              `yaml:"indentation"`          // The number of indent characters per nesting level
	IndentationStyle     IndentationStyle `yaml:"indentationStyle"`     // Tab, space or none (single line output)
	Declaration          bool             `yaml:"declaration"`          // Whether to write an XML declaration
	DeclarationText      string           `yaml:"declarationText"`      // The pseudo attributes of the declaration, e.g. version="1.0"
	TrailingNewline      bool             `yaml:"trailingNewline"`      // Whether the document ends with a newline
	SelfClosing          bool             `yaml:"selfClosing"`          // Write empty elements as <x/> rather than <x></x>
	SpaceBeforeSelfClose bool             `yaml:"spaceBeforeSelfClose"` // Write <x /> rather than <x/>
	Strict               bool             `yaml:"strict"`               // Reject attributes and elements that are not part of a shape
}

var defaultConfig = &Config{
	Indentation:      1,
	IndentationStyle: IndentationStyleTab,
	Declaration:      true,
	DeclarationText:  DefaultDeclaration,
	TrailingNewline:  false,
	SelfClosing:      true,
}

// GetDefaultConfig returns a copy of the default configuration.
func GetDefaultConfig() *Config {
	def := *defaultConfig
	return &def
}

func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

func GetConfigFromContext(ctx context.Context) *Config {
	val := ctx.Value(configContextKey)
	if val == nil {
		return GetDefaultConfig()
	}

	cfg, ok := val.(*Config)
	if !ok {
		return GetDefaultConfig()
	}

	return cfg
}

// HasConfig reports whether a configuration was explicitly attached to ctx.
func HasConfig(ctx context.Context) bool {
	_, ok := ctx.Value(configContextKey).(*Config)
	return ok
}

// GetConfigFromDoc inspects raw document bytes and returns the formatting preferences they use.
func GetConfigFromDoc(data []byte) *Config {
	cfg := GetDefaultConfig()

	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")

	cfg.Declaration = false
	if bytes.HasPrefix(trimmed, []byte("<?xml")) {
		cfg.Declaration = true
		if end := bytes.Index(trimmed, []byte("?>")); end > 0 {
			cfg.DeclarationText = string(bytes.TrimSpace(trimmed[len("<?xml"):end]))
		}
	}

	cfg.Indentation, cfg.IndentationStyle = inspectIndentation(data)
	cfg.TrailingNewline = len(data) > 0 && data[len(data)-1] == '\n'

	selfClose := bytes.Count(data, []byte("/>"))
	switch {
	case selfClose == 0 && hasExplicitEmptyElement(data):
		cfg.SelfClosing = false
	case selfClose > 0:
		cfg.SpaceBeforeSelfClose = bytes.Count(data, []byte(" />"))*2 > selfClose
	}

	return cfg
}

// LoadConfig decodes YAML overrides from r on top of base. Keys absent from the YAML keep the value from base.
func LoadConfig(r io.Reader, base *Config) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read xml config: %w", err)
	}
	if err := ValidateConfigDocument(data); err != nil {
		return nil, err
	}

	cfg := GetDefaultConfig()
	if base != nil {
		*cfg = *base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode xml config: %w", err)
	}

	return cfg, nil
}

func inspectIndentation(data []byte) (int, IndentationStyle) {
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))

	if len(lines) <= 1 {
		return 0, IndentationStyleNone
	}

	for _, line := range lines {
		leading := 0
		for leading < len(line) && (line[leading] == ' ' || line[leading] == '\t') {
			leading++
		}
		if leading == 0 || leading == len(line) {
			continue
		}

		if line[leading] != '<' {
			continue
		}

		style := IndentationStyleSpace
		if line[0] == '\t' {
			style = IndentationStyleTab
		}

		count := 0
		for _, ch := range line[:leading] {
			if (style == IndentationStyleTab && ch == '\t') || (style == IndentationStyleSpace && ch == ' ') {
				count++
			} else {
				break
			}
		}

		return count, style
	}

	return defaultConfig.Indentation, defaultConfig.IndentationStyle
}

// hasExplicitEmptyElement reports whether data contains an element written as <x ...></x>.
func hasExplicitEmptyElement(data []byte) bool {
	for i := 0; ; {
		idx := bytes.Index(data[i:], []byte("></"))
		if idx < 0 {
			return false
		}
		pos := i + idx
		i = pos + 1

		end := bytes.IndexByte(data[pos+3:], '>')
		if end < 0 {
			return false
		}
		name := data[pos+3 : pos+3+end]

		start := bytes.LastIndexByte(data[:pos], '<')
		if start < 0 || start+1 >= pos || data[start+1] == '/' {
			continue
		}
		tag := data[start+1 : pos]
		if bytes.HasPrefix(tag, name) && (len(tag) == len(name) || isSpace(tag[len(name)])) {
			return true
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
