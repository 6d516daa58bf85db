package tessellate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

const (
	// Property types, as written into SVG metadata
	PropString = "string"
	PropInt    = "int"
	PropBool   = "bool"
)

// Properties is free form, typed metadata about an artwork (author,
// edition, ...). It's written into exported SVGs & kept in the gallery.
type Properties struct {
	ints    map[string]int
	strings map[string]string
	bools   map[string]bool
}

// NewProperties returns an empty properties
func NewProperties() *Properties {
	return &Properties{
		ints:    map[string]int{},
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

// Merge properties `o` into this properties
func (p *Properties) Merge(o *Properties) *Properties {
	if o == nil {
		return p
	}
	for k, v := range o.ints {
		p.SetInt(k, v)
	}
	for k, v := range o.strings {
		p.SetString(k, v)
	}
	for k, v := range o.bools {
		p.SetBool(k, v)
	}
	return p
}

// Parse sets key from a raw string value, guessing the type:
// "true"/"false" are bools, integers are ints, anything else a string.
func (p *Properties) Parse(key, value string) {
	switch value {
	case "true":
		p.SetBool(key, true)
		return
	case "false":
		p.SetBool(key, false)
		return
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		p.SetInt(key, int(i))
		return
	}
	p.SetString(key, value)
}

// Len is the number of keys set.
func (p *Properties) Len() int {
	return len(p.ints) + len(p.strings) + len(p.bools)
}

// Keys returns all set keys, sorted.
func (p *Properties) Keys() []string {
	keys := make([]string, 0, p.Len())
	for k := range p.ints {
		keys = append(keys, k)
	}
	for k := range p.strings {
		keys = append(keys, k)
	}
	for k := range p.bools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toList flattens properties into the SVG metadata form, sorted by key so
// output is stable.
func (p *Properties) toList() []*Property {
	ps := []*Property{}
	for _, k := range p.Keys() {
		if v, ok := p.ints[k]; ok {
			ps = append(ps, &Property{Name: k, Value: strconv.Itoa(v), Type: PropInt})
		} else if v, ok := p.bools[k]; ok {
			ps = append(ps, &Property{Name: k, Value: fmt.Sprintf("%v", v), Type: PropBool})
		} else {
			ps = append(ps, &Property{Name: k, Value: p.strings[k], Type: PropString})
		}
	}
	return ps
}

// newPropertiesFromList reads SVG metadata properties back.
func newPropertiesFromList(in []*Property) *Properties {
	ps := NewProperties()
	for _, i := range in {
		switch i.Type {
		case PropInt:
			v, _ := strconv.ParseInt(i.Value, 10, 64)
			ps.SetInt(i.Name, int(v))
		case PropBool:
			ps.SetBool(i.Name, i.Value == "true")
		default:
			ps.SetString(i.Name, i.Value)
		}
	}
	return ps
}

// propsJSON is how properties are stored in the gallery
type propsJSON struct {
	I map[string]int    `json:"i,omitempty"`
	S map[string]string `json:"s,omitempty"`
	B map[string]bool   `json:"b,omitempty"`
}

func (p *Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(propsJSON{I: p.ints, S: p.strings, B: p.bools})
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	in := propsJSON{}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = *NewProperties()
	for k, v := range in.I {
		p.ints[k] = v
	}
	for k, v := range in.S {
		p.strings[k] = v
	}
	for k, v := range in.B {
		p.bools[k] = v
	}
	return nil
}

func (p *Properties) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

func (p *Properties) SetString(key, value string) {
	p.strings[key] = value
	delete(p.ints, key)
	delete(p.bools, key)
}

func (p *Properties) Int(key string) (int, bool) {
	v, ok := p.ints[key]
	return v, ok
}

func (p *Properties) SetInt(key string, value int) {
	p.ints[key] = value
	delete(p.strings, key)
	delete(p.bools, key)
}

func (p *Properties) Bool(key string) (bool, bool) {
	v, ok := p.bools[key]
	return v, ok
}

func (p *Properties) SetBool(key string, value bool) {
	p.bools[key] = value
	delete(p.strings, key)
	delete(p.ints, key)
}
