package gen

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// stampLine matches the banner line carrying the generation date, in the
// Swift ("//  Auto-generated on 01/02/06") and Go ("// Code generated by
// locgen on 01/02/06. DO NOT EDIT.") forms.
var stampLine = regexp.MustCompile(`^//\s+(Auto-generated|Code generated by locgen) on \d{2}/\d{2}/\d{2}\b`)

// bannerLines bounds the search for the stamp line to the file header.
const bannerLines = 10

// WriteFile replaces the file at path with content, all or nothing: the
// content goes to a temporary file next to path which is then renamed over
// it. The parent directory must exist.
//
// If the existing file differs from content only in its generation date,
// it is left untouched and WriteFile reports false.
func WriteFile(path string, content []byte) (bool, error) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return false, NewWriteError(path, err)
	}
	if !info.IsDir() {
		return false, NewWriteError(path, errors.New(dir+" is not a directory"))
	}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if SameContent(existing, content) {
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, NewWriteError(path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, NewWriteError(path, err)
	}
	cleanup := func(cause error) (bool, error) {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return false, NewWriteError(path, cause)
	}
	if _, err := tmp.Write(content); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return false, NewWriteError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return false, NewWriteError(path, err)
	}
	return true, nil
}

// SameContent reports whether a and b are equal once the generation date
// line of their banners is ignored. Only the first stamp line within the
// first bannerLines lines counts; dates elsewhere are content.
func SameContent(a, b []byte) bool {
	return bytes.Equal(stripStamp(a), stripStamp(b))
}

func stripStamp(b []byte) []byte {
	lines := bytes.SplitAfter(b, []byte("\n"))
	for i, l := range lines[:min(len(lines), bannerLines)] {
		if stampLine.Match(l) {
			out := bytes.Join(lines[:i], nil)
			return append(out, bytes.Join(lines[i+1:], nil)...)
		}
	}
	return b
}
