package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ErrInvalidOverride indicates an override dictionary that could not be
// parsed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidOverride struct {
	Path  string
	cause error
}

func (e *ErrInvalidOverride) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid override dictionary: %v", e.cause)
	}
	return fmt.Sprintf("invalid override dictionary %q: %v", e.Path, e.cause)
}

func (e *ErrInvalidOverride) Unwrap() error { return e.cause }

// LoadOverrides reads an override dictionary from a JSON file mapping
// characters to reading lists:
//
//	{"行": ["hang", "xing"], "乐": ["le", "yue"]}
//
// Gzip-compressed files are detected by magic bytes and decompressed
// transparently. Keys longer than one character contribute their first
// character, empty keys are skipped.
func LoadOverrides(path string) (map[rune][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, &ErrInvalidOverride{Path: path, cause: err}
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrInvalidOverride{Path: path, cause: err}
	}

	overrides, err := ParseOverrides(data)
	if err != nil {
		return nil, &ErrInvalidOverride{Path: path, cause: err}
	}
	return overrides, nil
}

// ParseOverrides parses override dictionary JSON. See LoadOverrides for the
// format.
func ParseOverrides(data []byte) (map[rune][]string, error) {
	tmp := make(map[string][]string)
	if err := json.Unmarshal(data, &tmp); err != nil {
		return nil, err
	}
	out := make(map[rune][]string, len(tmp))
	for k, readings := range tmp {
		runes := []rune(k)
		if len(runes) == 0 {
			continue
		}
		out[runes[0]] = readings
	}
	return out, nil
}
