package analysis

import (
	"sort"

	"github.com/SeamusWaldron/nxcube"
)

// NGram is a move sequence that repeats within or across sessions.
type NGram struct {
	N           int               `json:"n"`
	Sequence    string            `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence is where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport holds the most frequent n-grams, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// RollingHash is a Rabin-Karp hash over a fixed window of tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll pushes a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the topK most frequent repeated n-grams for each n in
// [minN, maxN].
func MineNGrams(moves []nxcube.Move, minN, maxN, topK int) *NGramReport {
	return MineSessions(map[string][]nxcube.Move{"": moves}, minN, maxN, topK)
}

// MineSessions counts n-grams over several sessions at once. N-grams never
// span two sessions.
func MineSessions(sessions map[string][]nxcube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}

	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for n := minN; n <= maxN; n++ {
		counts := make(map[uint64][]*ngramEntry)
		for _, id := range ids {
			countNGrams(counts, id, sessions[id], n)
		}
		if ngrams := topNGrams(counts, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func countNGrams(counts map[uint64][]*ngramEntry, sessionID string, moves []nxcube.Move, n int) {
	if n <= 0 || len(moves) < n {
		return
	}

	rh := NewRollingHash(n)
	for i, m := range moves {
		rh.Roll(Token(m))
		if !rh.Ready() {
			continue
		}

		occ := NGramOccurrence{SessionID: sessionID, StartIndex: i - n + 1}
		hash := rh.Hash()
		window := rh.Window()

		entry := findEntry(counts[hash], window)
		if entry == nil {
			counts[hash] = append(counts[hash], &ngramEntry{tokens: window, count: 1, occurrences: []NGramOccurrence{occ}})
			continue
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}
}

// findEntry resolves hash collisions by comparing the actual tokens.
func findEntry(bucket []*ngramEntry, tokens []uint8) *ngramEntry {
	for _, e := range bucket {
		if slicesEqual(e.tokens, tokens) {
			return e
		}
	}
	return nil
}

func topNGrams(counts map[uint64][]*ngramEntry, n, topK int) []NGram {
	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, e := range bucket {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return string(entries[i].tokens) < string(entries[j].tokens)
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		moves := make([]nxcube.Move, len(e.tokens))
		for j, t := range e.tokens {
			moves[j] = FromToken(t)
		}
		result[i] = NGram{
			N:           n,
			Sequence:    nxcube.FormatMoves(moves),
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
