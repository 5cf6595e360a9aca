package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Core deterministic encoding: sorted map keys and shortest integer forms,
// so equal values always encode to equal bytes.
var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	if cborEncMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Sprintf("codec: cbor encode mode: %v", err))
	}
	if cborDecMode, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(fmt.Sprintf("codec: cbor decode mode: %v", err))
	}
}

// CBOR is a deterministic CBOR codec backed by github.com/fxamacker/cbor/v2.
type CBOR struct{}

// Marshal encodes v as deterministic CBOR.
func (CBOR) Marshal(v any) ([]byte, error) { return cborEncMode.Marshal(v) }

// Unmarshal decodes CBOR data into v, rejecting duplicate map keys.
func (CBOR) Unmarshal(data []byte, v any) error { return cborDecMode.Unmarshal(data, v) }

// Name returns "cbor".
func (CBOR) Name() string { return "cbor" }
