package sanitizer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a constraint set with its severity, as stored in YAML:
//
//	severity: strict
//	constraints:
//	  Email: valid_email
//	  Name:
//	    kind: max_length
//	    ref: 32
//
// A constraint is either a kind name or a mapping with kind and ref.
// Severity may be omitted and defaults to relaxed.
type Profile struct {
	Severity    Severity
	Constraints Set
}

type rawProfile struct {
	Severity    string                `yaml:"severity"`
	Constraints map[string]yaml.Node `yaml:"constraints"`
}

type rawConstraint struct {
	Kind string `yaml:"kind"`
	Ref  *int   `yaml:"ref"`
}

// ParseProfile decodes a YAML profile. Unknown keys, kinds and severities are
// rejected.
func ParseProfile(data []byte) (Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawProfile
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	p := Profile{Severity: Relaxed, Constraints: make(Set, len(raw.Constraints))}
	if raw.Severity != "" {
		sev, err := ParseSeverity(raw.Severity)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
		p.Severity = sev
	}

	for field, node := range raw.Constraints {
		c, err := decodeConstraint(&node)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: field %q: %w", ErrInvalidProfile, field, err)
		}
		p.Constraints[field] = c
	}

	return p, nil
}

func decodeConstraint(node *yaml.Node) (Constraint, error) {
	var raw rawConstraint
	switch node.Kind {
	case yaml.ScalarNode:
		raw.Kind = node.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i].Value; key != "kind" && key != "ref" {
				return Constraint{}, fmt.Errorf("line %d: unknown key %q", node.Content[i].Line, key)
			}
		}
		if err := node.Decode(&raw); err != nil {
			return Constraint{}, err
		}
	default:
		return Constraint{}, fmt.Errorf("line %d: constraint must be a kind name or a mapping", node.Line)
	}

	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return Constraint{}, err
	}
	if raw.Ref == nil {
		return NewConstraint(kind), nil
	}
	return WithRef(kind, *raw.Ref), nil
}

// LoadProfile reads and decodes a YAML profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return ParseProfile(data)
}

// Options returns the sanitizer options the profile implies besides its
// constraint set.
func (p Profile) Options() []Option {
	return []Option{WithSeverity(p.Severity)}
}
