package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Palette []string `json:"palette" cbor:"palette"`
	Data    []uint64 `json:"data,omitempty" cbor:"data,omitempty"`
}

func allCodecs() []Codec {
	return []Codec{JSON{}, GoJSON{}, CBOR{}}
}

func TestByName(t *testing.T) {
	for _, c := range allCodecs() {
		got, ok := ByName(c.Name())
		require.True(t, ok)
		require.Equal(t, c.Name(), got.Name())
	}

	_, ok := ByName("nbt")
	require.False(t, ok)
	require.Equal(t, "go-json", Default.Name())
}

func TestRoundTrip(t *testing.T) {
	in := sample{Palette: []string{"air", "stone"}, Data: []uint64{0x1, 0xFFFFFFFFFFFFFFFF}}

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			require.Equal(t, in, out)
		})
	}
}

func TestJSONCodecsAgree(t *testing.T) {
	in := sample{Palette: []string{"air"}}

	std, err := JSON{}.Marshal(in)
	require.NoError(t, err)
	fast, err := GoJSON{}.Marshal(in)
	require.NoError(t, err)

	require.JSONEq(t, `{"palette":["air"]}`, string(std))
	require.JSONEq(t, string(std), string(fast))
}

func TestCBOR_Deterministic(t *testing.T) {
	a, err := CBOR{}.Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	b, err := CBOR{}.Marshal(map[string]int{"c": 3, "a": 1, "b": 2})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCBOR_RejectsDuplicateKeys(t *testing.T) {
	// {"a": 1, "a": 2}
	data := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}
	var out map[string]int
	require.Error(t, CBOR{}.Unmarshal(data, &out))
}

func TestGoJSON_Append(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x="), []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "x=[1,2]", string(out))
}

func TestMustMarshal(t *testing.T) {
	require.Equal(t, "[1]", string(MustMarshal(nil, []int{1})))
	require.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
