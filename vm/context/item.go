package vmcontext

import (
	"encoding/json"
)

// LoadJSON decodes the value stored under key into v. It reports false when the key is absent.
func LoadJSON(s ReadonlyStorage, key []byte, kind string, v interface{}) (bool, error) {
	data, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err = json.Unmarshal(data, v); err != nil {
		return true, NewParseErr(kind, err)
	}
	return true, nil
}

// SaveJSON stores v encoded as JSON under key.
func SaveJSON(s Storage, key []byte, kind string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return NewSerializeErr(kind, err)
	}
	return s.Set(key, data)
}
