package cedar

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
)

// snapshot is the on-disk representation of a Cedar instance: every field
// that determines its behavior, with the unexported key counter exported
// for the encoders.
type snapshot struct {
	Array    []node
	Ninfos   []ninfo
	Blocks   []block
	Reject   [257]int
	BheadF   int
	BheadC   int
	BheadO   int
	Capacity int
	Size     int
	Ordered  bool
	MaxTrial int
	KeyCount int
}

func (da *Cedar) toSnapshot() snapshot {
	return snapshot{
		Array:    da.Array,
		Ninfos:   da.Ninfos,
		Blocks:   da.Blocks,
		Reject:   da.Reject,
		BheadF:   da.BheadF,
		BheadC:   da.BheadC,
		BheadO:   da.BheadO,
		Capacity: da.Capacity,
		Size:     da.Size,
		Ordered:  da.Ordered,
		MaxTrial: da.MaxTrial,
		KeyCount: da.keyCount,
	}
}

func (da *Cedar) fromSnapshot(s snapshot) {
	da.Array = s.Array
	da.Ninfos = s.Ninfos
	da.Blocks = s.Blocks
	da.Reject = s.Reject
	da.BheadF = s.BheadF
	da.BheadC = s.BheadC
	da.BheadO = s.BheadO
	da.Capacity = s.Capacity
	da.Size = s.Size
	da.Ordered = s.Ordered
	da.MaxTrial = s.MaxTrial
	da.keyCount = s.KeyCount
}

// MarshalBinary encodes the trie with encoding/gob.
func (da *Cedar) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(da.toSnapshot()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a trie previously written by MarshalBinary,
// replacing the receiver's contents.
func (da *Cedar) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return err
	}
	da.fromSnapshot(s)
	return nil
}

// MarshalJSON encodes the trie as JSON. The format is not guaranteed
// stable across versions of this package.
func (da *Cedar) MarshalJSON() ([]byte, error) {
	return json.Marshal(da.toSnapshot())
}

// UnmarshalJSON decodes a trie previously written by MarshalJSON,
// replacing the receiver's contents.
func (da *Cedar) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	da.fromSnapshot(s)
	return nil
}

// SaveToFile writes the trie to path using the given format, either
// "gob" or "json".
func (da *Cedar) SaveToFile(path, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "gob":
		data, err = da.MarshalBinary()
	case "json":
		data, err = da.MarshalJSON()
	default:
		return fmt.Errorf("cedar: unknown format %q", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadFromFile reads a trie previously written by SaveToFile, replacing
// the receiver's contents.
func (da *Cedar) LoadFromFile(path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch format {
	case "gob":
		return da.UnmarshalBinary(data)
	case "json":
		return da.UnmarshalJSON(data)
	default:
		return fmt.Errorf("cedar: unknown format %q", format)
	}
}
