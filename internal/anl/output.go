//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package anl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/e-gun/DistantReader/internal/str"
	"github.com/e-gun/DistantReader/internal/vv"
)

// WriteJSON - v as indented json at dir/name; non-ASCII and markup characters are written as is
func WriteJSON(dir string, name string, v any) error {
	const (
		FAIL = "write %s: %w"
	)
	fn := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf(FAIL, fn, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", vv.JSONINDENT)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf(FAIL, fn, err)
	}
	if err := os.WriteFile(fn, buf.Bytes(), vv.WRITEPERMS); err != nil {
		return fmt.Errorf(FAIL, fn, err)
	}
	return nil
}

// ReadResults - the basic results file in dir
func ReadResults(dir string) (*str.BasicOutput, error) {
	var b str.BasicOutput
	if err := readjson(filepath.Join(dir, vv.RESULTSOUTFILE), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ReadEnhanced - the enhanced results file in dir
func ReadEnhanced(dir string) (*str.EnhancedOutput, error) {
	var e str.EnhancedOutput
	if err := readjson(filepath.Join(dir, vv.ENHANCEDOUTFILE), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func readjson(fn string, v any) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("read %s: %w", fn, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", fn, err)
	}
	return nil
}
