package country

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed iso3166.yaml
var iso3166Data []byte

// Country is a single registry entry.
type Country struct {
	Alpha2 string `yaml:"alpha2"`
	Alpha3 string `yaml:"alpha3"`
	Name   string `yaml:"name"`
}

// Table is an immutable registry keyed by alpha-2 code.
type Table struct {
	byCode map[string]Country
}

type document struct {
	Countries []Country `yaml:"countries"`
}

// NewTable decodes a YAML document of the form
//
//	countries:
//	  - alpha2: "DE"
//	    alpha3: "DEU"
//	    name: "Germany"
//
// Codes are stored upper-case.
func NewTable(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidData, err)
	}

	t := &Table{byCode: make(map[string]Country, len(doc.Countries))}
	for _, c := range doc.Countries {
		c.Alpha2 = strings.ToUpper(c.Alpha2)
		if !isAlpha2(c.Alpha2) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, c.Alpha2)
		}
		if _, exists := t.byCode[c.Alpha2]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, c.Alpha2)
		}
		t.byCode[c.Alpha2] = c
	}
	return t, nil
}

var iso3166 = sync.OnceValue(func() *Table {
	t, err := NewTable(iso3166Data)
	if err != nil {
		panic(fmt.Sprintf("country: embedded ISO 3166-1 data: %v", err))
	}
	return t
})

// ISO3166 returns the registry of officially assigned ISO 3166-1 codes.
// The embedded data is decoded on first use.
func ISO3166() *Table {
	return iso3166()
}

// Lookup reports whether code is a known alpha-2 code.
func (t *Table) Lookup(code string) bool {
	_, ok := t.Get(code)
	return ok
}

// Get returns the entry for code.
func (t *Table) Get(code string) (Country, bool) {
	if t == nil || len(code) != 2 {
		return Country{}, false
	}
	c, ok := t.byCode[strings.ToUpper(code)]
	return c, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCode)
}

func isAlpha2(code string) bool {
	return len(code) == 2 &&
		code[0] >= 'A' && code[0] <= 'Z' &&
		code[1] >= 'A' && code[1] <= 'Z'
}
