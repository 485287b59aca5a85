package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LibraryEntry summarizes one deck folder of a deck library.
type LibraryEntry struct {
	Name  string
	Path  string
	Cards int

	// Tokens is -1 when the deck has no token table yet.
	Tokens int
	Common int
	Err    error
}

// HasTable reports whether the deck's token table has been written.
func (e LibraryEntry) HasTable() bool {
	return e.Tokens >= 0
}

// ScanLibrary lists the deck folders under dir in name order. Folders
// without a deck file are skipped; decks that fail to parse are listed
// with Err set.
func ScanLibrary(dir string) ([]LibraryEntry, error) {
	dir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving deck library: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading deck library: %w", err)
	}

	var decks []LibraryEntry
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// follows symlinked deck folders
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			continue
		}

		le := LibraryEntry{Name: entry.Name(), Path: path, Tokens: -1}
		d, err := LoadDeck(path)
		switch {
		case errors.Is(err, ErrDeckNotFound):
			continue
		case err != nil:
			le.Err = err
			decks = append(decks, le)
			continue
		}
		le.Cards = len(d.Cards)

		if table, err := LoadTokenTable(d.TokenTablePath()); err == nil {
			le.Tokens, le.Common = len(table.Tokens), len(table.Common)
		} else if !errors.Is(err, os.ErrNotExist) {
			le.Err = err
		}
		decks = append(decks, le)
	}

	return decks, nil
}
