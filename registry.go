package sfdl

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = map[string]Codec{"xml": XML()}
	registryMu sync.RWMutex
)

// RegisterCodec makes a codec available by name.
// Codec subpackages call it from init, so importing one is enough:
//
//	import _ "github.com/zoobzio/sfdl/yaml"
//
// Registering a name twice replaces the earlier codec.
func RegisterCodec(name string, c Codec) {
	if c == nil {
		panic("sfdl: RegisterCodec codec is nil")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = c
}

// LookupCodec returns the codec registered under name.
func LookupCodec(name string) (Codec, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// Codecs returns the sorted names of all registered codecs.
func Codecs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
