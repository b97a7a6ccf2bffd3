package config

import (
	"io"
	"io/ioutil"
	"os"
	"sort"

	"github.com/gravitational/trace"
	"github.com/magiconair/properties"
)

// Properties is a set of key=value configuration properties
type Properties map[string]string

// ReadProperties reads the property file at path
func ReadProperties(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	defer f.Close()
	props, err := ParseProperties(f)
	if err != nil {
		return nil, trace.Wrap(err, "failed to parse %v", path)
	}
	return props, nil
}

// ParseProperties parses Java-style properties from r.
// Values are taken literally: ${...} references are not expanded
func ParseProperties(r io.Reader) (Properties, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, trace.BadParameter("invalid property file: %v", err)
	}
	return Properties(props.Map()), nil
}

// GetProperty returns the value of the property with the given key
func (r Properties) GetProperty(key string) (string, error) {
	value, ok := r[key]
	if !ok {
		return "", trace.NotFound("property %q is not set", key)
	}
	return value, nil
}

// Keys returns the sorted list of property keys
func (r Properties) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
