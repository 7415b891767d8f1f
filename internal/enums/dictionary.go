// Package enums holds the closed, bijective lookup tables between portable
// format enum literals and ledger variant tags.
//
// Every table is built once at package initialisation and never mutated. A
// lookup miss is always an error; no table guesses a fallback value.
package enums

import (
	"fmt"
	"slices"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Dictionary maps one closed set of portable literals onto one closed set of
// ledger tags.
type Dictionary struct {
	name       string
	literals   []string
	toLedger   map[string]string
	fromLedger map[string]string
}

// pair is a (portable literal, ledger tag) entry.
type pair struct {
	literal string
	tag     string
}

var registry []*Dictionary

// define builds a dictionary and registers it for exhaustive tests. It panics on
// duplicates in either direction, since that would break bijectivity.
func define(name string, pairs ...pair) *Dictionary {
	d := &Dictionary{
		name:       name,
		literals:   make([]string, 0, len(pairs)),
		toLedger:   make(map[string]string, len(pairs)),
		fromLedger: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := d.toLedger[p.literal]; dup {
			panic(fmt.Sprintf("enums: %s: duplicate literal %q", name, p.literal))
		}
		if _, dup := d.fromLedger[p.tag]; dup {
			panic(fmt.Sprintf("enums: %s: duplicate tag %q", name, p.tag))
		}
		d.literals = append(d.literals, p.literal)
		d.toLedger[p.literal] = p.tag
		d.fromLedger[p.tag] = p.literal
	}
	registry = append(registry, d)
	return d
}

// Name returns the dictionary name used in error messages.
func (d *Dictionary) Name() string { return d.name }

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.literals) }

// ToLedger maps a portable literal to its ledger tag. Unknown literals fail with
// a field-less ValidationError (UNKNOWN_ENUM_VALUE); callers attach the path.
func (d *Dictionary) ToLedger(literal string) (string, error) {
	tag, ok := d.toLedger[literal]
	if !ok {
		return "", validation.NewValidationError("", validation.CodeUnknownEnumValue, literal,
			fmt.Sprintf("unknown %s literal", d.name))
	}
	return tag, nil
}

// FromLedger maps a ledger tag to its portable literal. Unknown tags fail with a
// field-less ParseError (UNKNOWN_ENUM_VALUE).
func (d *Dictionary) FromLedger(tag string) (string, error) {
	literal, ok := d.fromLedger[tag]
	if !ok {
		return "", validation.NewParseError("", validation.CodeUnknownEnumValue, tag,
			fmt.Sprintf("unknown %s ledger tag", d.name))
	}
	return literal, nil
}

// HasLiteral reports whether literal is a member of the dictionary.
func (d *Dictionary) HasLiteral(literal string) bool {
	_, ok := d.toLedger[literal]
	return ok
}

// Literals returns the portable literals in declaration order.
func (d *Dictionary) Literals() []string { return slices.Clone(d.literals) }

// Tags returns the ledger tags in declaration order.
func (d *Dictionary) Tags() []string {
	tags := make([]string, len(d.literals))
	for i, l := range d.literals {
		tags[i] = d.toLedger[l]
	}
	return tags
}

// All returns every dictionary defined by this package.
func All() []*Dictionary { return slices.Clone(registry) }
