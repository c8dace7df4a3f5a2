package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the simulation document at path.
// It returns *NotFoundError when the file does not exist and
// *MalformedInputError when the contents cannot be decoded. No schema
// validation happens here beyond decoding; missing sections surface as
// *MissingFieldError at first use.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open simulation data: %w", err)
	}
	defer file.Close()

	var doc Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	return &doc, nil
}
