package codec

import (
	"fmt"
	"math/big"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/tnetstr/native"
)

// Structpb marshals untyped values through protobuf's well-known Struct
// types. Protobuf numbers are float64, so integers survive only up to 2^53
// and arbitrary-precision integers past int64 are rejected; dict keys must
// be strings and duplicates collapse. Use it for interop with protobuf
// consumers, not for wire fidelity.
type Structpb struct{}

var _ Codec[any] = Structpb{}

func (Structpb) Encode(v any) ([]byte, error) {
	pv, err := toProto(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pv)
}

func (Structpb) Decode(b []byte) (any, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return nil, err
	}
	return pv.AsInterface(), nil
}

// toProto normalizes the shapes the native model produces before handing
// off to structpb, which does not know Dict or big integers.
func toProto(v any) (*structpb.Value, error) {
	switch x := v.(type) {
	case *big.Int:
		if !x.IsInt64() {
			return nil, fmt.Errorf("codec: integer %s overflows protobuf number", x)
		}
		return structpb.NewNumberValue(float64(x.Int64())), nil
	case []any:
		vals := make([]*structpb.Value, len(x))
		for i, item := range x {
			pv, err := toProto(item)
			if err != nil {
				return nil, err
			}
			vals[i] = pv
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil
	case native.Dict:
		fields := make(map[string]*structpb.Value, len(x))
		for _, p := range x {
			k, ok := p.Key.(string)
			if !ok {
				return nil, fmt.Errorf("codec: struct key must be a string, got %T", p.Key)
			}
			pv, err := toProto(p.Val)
			if err != nil {
				return nil, err
			}
			fields[k] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	case map[string]any:
		fields := make(map[string]*structpb.Value, len(x))
		for k, val := range x {
			pv, err := toProto(val)
			if err != nil {
				return nil, err
			}
			fields[k] = pv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	default:
		return structpb.NewValue(v)
	}
}
