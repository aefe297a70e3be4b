// Package tokens loads the token→recipients mapping from a JSON file and
// serves it as an immutable snapshot. Reload builds a fresh snapshot and
// publishes it with a single atomic swap, so in-flight requests keep the
// mapping they resolved and no lock is held during request processing.
package tokens

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"os"
	"sync/atomic"
)

// tokenFile mirrors the on-disk format:
//
//	{"tokens": {"<token>": ["<email>", ...], ...}}
type tokenFile struct {
	Tokens map[string][]string `json:"tokens"`
}

// Snapshot is an immutable view of the token file contents.
type Snapshot struct {
	recipients map[string][]string
}

// Recipients returns the recipient list bound to token, in file order.
// The second return is false when the token is not configured.
func (s *Snapshot) Recipients(token string) ([]string, bool) {
	r, ok := s.recipients[token]
	return r, ok
}

// Count returns the number of configured tokens.
func (s *Snapshot) Count() int {
	return len(s.recipients)
}

// Store holds the current snapshot and swaps it atomically on reload.
type Store struct {
	path string
	cur  atomic.Pointer[Snapshot]
}

// Open reads and validates the token file at path. A missing or invalid
// file is an error: the caller is expected to fail fast at startup.
func Open(path string) (*Store, error) {
	snap, err := load(path)
	if err != nil {
		return nil, err
	}

	st := &Store{path: path}
	st.cur.Store(snap)
	return st, nil
}

// Snapshot returns the current mapping. The returned value is never
// mutated; a reload publishes a new one instead.
func (st *Store) Snapshot() *Snapshot {
	return st.cur.Load()
}

// Recipients resolves a token against the current snapshot.
func (st *Store) Recipients(token string) ([]string, bool) {
	return st.Snapshot().Recipients(token)
}

// Count returns the number of tokens in the current snapshot.
func (st *Store) Count() int {
	return st.Snapshot().Count()
}

// Loaded reports whether a snapshot has been published.
func (st *Store) Loaded() bool {
	return st.cur.Load() != nil
}

// Reload re-reads the token file and swaps in the new snapshot.
// On error the previous snapshot stays in place.
func (st *Store) Reload() error {
	snap, err := load(st.path)
	if err != nil {
		return err
	}
	st.cur.Store(snap)
	return nil
}

// load parses and validates the token file. Every token must map to at
// least one syntactically valid address; anything else rejects the whole
// file so bad config never reaches request time.
func load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from config
	if err != nil {
		return nil, fmt.Errorf("read token file %s: %w", path, err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}

	if len(tf.Tokens) == 0 {
		return nil, fmt.Errorf("token file %s: no tokens configured", path)
	}

	for token, recipients := range tf.Tokens {
		if len(recipients) == 0 {
			return nil, fmt.Errorf("token file %s: token %q has no recipients", path, truncate(token))
		}
		for _, addr := range recipients {
			if _, err := mail.ParseAddress(addr); err != nil {
				return nil, fmt.Errorf("token file %s: token %q: invalid address %q: %w",
					path, truncate(token), addr, err)
			}
		}
	}

	return &Snapshot{recipients: tf.Tokens}, nil
}

// truncate shortens a token for error messages so full credentials never
// end up in logs.
func truncate(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[:6] + "..."
}
