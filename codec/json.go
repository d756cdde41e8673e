package codec

import "encoding/json"

// JSONCodec serializes values with encoding/json. Note that decoding into
// `any` yields float64 for every number, so integer fidelity is lost on a
// transcode through JSON.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSONCodec[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
