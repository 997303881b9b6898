// Package yaml reads command-line configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"reflect"
	"strings"

	nav "github.com/BastouP/Nav"
	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader for YAML documents.
//
// Top-level keys name flags, either as written on the command line
// ("url-prefix") or in snake case ("url_prefix"). An empty document
// resolves nothing. Scalars given to string flags keep their source text,
// so "dir: 2024" sets the directory "2024".
func Loader(r io.Reader) (kong.Resolver, error) {
	nodes := map[string]yaml.Node{}
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil && !errors.Is(err, io.EOF) {
		return nil, nav.Errorf(nav.EINVALID, "invalid YAML config: %v", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		node, ok := nodes[flag.Name]
		if !ok {
			node, ok = nodes[strings.ReplaceAll(flag.Name, "-", "_")]
		}
		if !ok {
			return nil, nil
		}
		return value(flag, &node)
	}
	return f, nil
}

// value converts node into the form kong decodes into flag.
func value(flag *kong.Flag, node *yaml.Node) (any, error) {
	if node.Kind == yaml.ScalarNode && node.Tag != "!!null" && flag.Target.Kind() == reflect.String {
		return node.Value, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, nav.Errorf(nav.EINVALID, "invalid YAML value for %q: %v", flag.Name, err)
	}
	return v, nil
}
