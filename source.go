package mornington

import "github.com/spf13/afero"

// ReadSource loads a program's source text through an afero.Fs, the same
// indirection spectr uses for its config/provider file reads (see
// DESIGN.md) — letting callers pass afero.NewOsFs() in production and
// afero.NewMemMapFs() in tests without a real file on disk.
func ReadSource(fs afero.Fs, path string) (string, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
