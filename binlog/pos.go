package binlog

import (
	"encoding/json"
	"errors"
	"os"
)

// Position names a binlog file and a byte offset inside it. A dump run
// persists it between invocations so decoding can resume where the last
// run stopped.
type Position struct {
	Name string
	Pos  uint32
}

// ReadPos loads a saved position, seeding the file with a zero position
// on first use.
func ReadPos(fileName string) (*Position, error) {
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		initial := Position{Name: "", Pos: 0}
		content, err := json.MarshalIndent(initial, "", "\t")
		if err != nil {
			return nil, err
		}
		err = os.WriteFile(fileName, content, 0644)
		if err != nil {
			return nil, err
		}
		return &initial, nil
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	pos := &Position{}
	err = json.Unmarshal(data, pos)
	if err != nil {
		return nil, err
	}
	return pos, nil
}

func WritePos(fileName string, nextPos Position) error {
	content, err := json.MarshalIndent(nextPos, "", "\t")
	if err != nil {
		return err
	}
	err = os.WriteFile(fileName, content, 0644)
	if err != nil {
		return err
	}
	return nil
}
