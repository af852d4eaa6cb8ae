package answers

import (
	"fmt"
	"sort"
)

// Resolver turns partial answers into a complete Set.
//
// For each answer, in definition order: a supplied value wins; otherwise the
// default comes from Defaults (typically the user's config) or the built-in
// default, and is offered to Prompter when one is set.
type Resolver struct {
	// Defaults override built-in defaults. Keys must be recognized.
	Defaults map[string]string

	// Prompter asks for answers that were not supplied. nil disables prompting.
	Prompter Prompter
}

// Resolve validates supplied and fills every missing answer.
// Vocabulary errors in supplied or Defaults are reported before any prompt.
func (r *Resolver) Resolve(supplied map[string]string) (Set, error) {
	if err := checkKeys(supplied); err != nil {
		return Set{}, err
	}
	if err := checkKeys(r.Defaults); err != nil {
		return Set{}, err
	}
	for _, k := range sortedKeys(supplied) {
		d, _ := Lookup(k)
		if _, err := normalize(d, supplied[k]); err != nil {
			return Set{}, err
		}
	}

	resolved := make(map[Key]string, len(definitions))
	for _, d := range definitions {
		if v, ok := supplied[string(d.Key)]; ok {
			resolved[d.Key] = v
			continue
		}

		def, ok := r.Defaults[string(d.Key)]
		if !ok {
			def = d.Default(resolved)
		}

		if r.Prompter == nil {
			resolved[d.Key] = def
			continue
		}

		v, err := ask(r.Prompter, d, def)
		if err != nil {
			return Set{}, fmt.Errorf("prompting for %s: %w", d.Key, err)
		}
		resolved[d.Key] = v
	}

	values := make(map[string]string, len(resolved))
	for k, v := range resolved {
		values[string(k)] = v
	}
	return FromMap(values)
}

// WithDefaults resolves supplied against the built-in defaults without
// prompting.
func WithDefaults(supplied map[string]string) (Set, error) {
	r := &Resolver{}
	return r.Resolve(supplied)
}

// MustWithDefaults is WithDefaults that panics on error. For tests and
// static tables.
func MustWithDefaults(supplied map[string]string) Set {
	s, err := WithDefaults(supplied)
	if err != nil {
		panic(err)
	}
	return s
}

// Merge combines answer layers; later layers take precedence.
func Merge(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

func ask(p Prompter, d Definition, def string) (string, error) {
	if len(d.Choices) == 0 {
		return p.Input(d.Prompt, def)
	}
	// Offer the canonical form of the default so it matches a choice.
	if v, err := normalize(d, def); err == nil {
		def = v
	}
	return p.Select(d.Prompt, d.Choices, def)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
