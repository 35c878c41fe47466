// Package msgpack provides a MessagePack codec for SFDL descriptors.
//
// Importing the package registers the codec under the name "msgpack".
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/sfdl"
)

func init() {
	sfdl.RegisterCodec("msgpack", New())
}

// msgpackCodec implements sfdl.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() sfdl.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
