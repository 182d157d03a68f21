package main

import (
	"fmt"
	"strings"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate/fact"
)

// ValidFactNames returns a sorted list of valid fact names.
// Delegates to fact.Names() as the single source of truth.
func ValidFactNames() []string {
	return fact.Names()
}

// NormalizeFactNames converts CLI string values to a fact.Name slice.
// It handles case-insensitivity, whitespace trimming, and duplicate removal.
func NormalizeFactNames(values []string) ([]fact.Name, error) {
	if len(values) == 0 {
		return nil, nil
	}

	result := make([]fact.Name, 0, len(values))
	seen := make(map[fact.Name]struct{})

	for _, raw := range values {
		name, ok := fact.ParseName(raw)
		if !ok {
			if strings.TrimSpace(raw) == "" {
				return nil, fmt.Errorf("empty fact name provided (input: %q); valid facts: %s", raw, strings.Join(ValidFactNames(), ", "))
			}
			return nil, fmt.Errorf("unknown fact %q (valid: %s)", raw, strings.Join(ValidFactNames(), ", "))
		}

		if _, dup := seen[name]; dup {
			continue // ignore duplicates silently
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result, nil
}
