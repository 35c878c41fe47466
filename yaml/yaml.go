// Package yaml provides a YAML codec for SFDL descriptors.
//
// Importing the package registers the codec under the name "yaml".
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/sfdl"
)

func init() {
	sfdl.RegisterCodec("yaml", New())
}

// yamlCodec implements sfdl.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() sfdl.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
