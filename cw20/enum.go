package cw20

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// tagged values are encoded as externally tagged JSON objects: {"<tag>": <value>}
type tagged interface {
	Tag() string
}

func marshalTagged(v tagged) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("empty message")
	}
	return json.Marshal(map[string]interface{}{v.Tag(): v})
}

func unmarshalTagged(input []byte, kind string, registry []tagged) (interface{}, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(input, &obj); err != nil {
		return nil, err
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("expected exactly one variant of %s, got %d", kind, len(obj))
	}
	for tag, raw := range obj {
		if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
			return nil, fmt.Errorf("variant `%s` of %s has no value", tag, kind)
		}
		for _, proto := range registry {
			if proto.Tag() != tag {
				continue
			}
			ptr := reflect.New(reflect.TypeOf(proto))
			if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
				return nil, err
			}
			return ptr.Elem().Interface(), nil
		}
		return nil, fmt.Errorf("unknown variant `%s` of %s", tag, kind)
	}
	return nil, nil
}
