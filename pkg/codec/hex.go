package codec

import (
	"encoding/hex"
	"encoding/json"
)

// Hex is a byte slice represented as a hex string in JSON and YAML.
type Hex []byte

// HexArrayToBytesArray converts []Hex to [][]byte without copying the elements.
func HexArrayToBytesArray(val []Hex) [][]byte {
	converted := make([][]byte, len(val))
	for i, v := range val {
		converted[i] = v
	}
	return converted
}

// BytesArrayToHexArray converts [][]byte to []Hex without copying the elements.
func BytesArrayToHexArray(val [][]byte) []Hex {
	converted := make([]Hex, len(val))
	for i, v := range val {
		converted[i] = v
	}
	return converted
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *Hex) UnmarshalJSON(b []byte) error {
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	return h.fromString(str)
}

func (h *Hex) UnmarshalYAML(unmarshal func(interface{}) error) error {
	str := ""
	if err := unmarshal(&str); err != nil {
		return err
	}
	return h.fromString(str)
}

func (h *Hex) fromString(str string) error {
	res, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	*h = res
	return nil
}
