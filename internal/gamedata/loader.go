package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes one of the embedded JSON data files into T.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}

// MustLoad is Load for data the game cannot start without; it panics
// on any error.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
