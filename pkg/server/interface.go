/*
Package server implements msgpack IPC for the wordprob routines.

Clients write msgpack-encoded requests to the server's input and read one
response per request from its output. Every request names an action:

	{"id": "r1", "action": "next_word", "population": ["b", "c"], "prefix": ["a"], "reviews": [["a", "b"], ["a", "c"]]}
	{"id": "r2", "action": "length_buckets", "reviews": [["a", "bb"]]}
	{"id": "r3", "action": "substrings", "population": ["abcde", "fghij"], "target": "abfgabc", "size": 2, "seed": 7}
	{"id": "r4", "action": "vocab", "reviews": [["great", "food"]], "letters": "gr"}
	{"id": "r5", "action": "health"}

Responses carry the ordered result for the action, the time taken in
microseconds, and on failure an error string and code:

	{"id": "r1", "status": "ok", "probs": [{"w": "b", "p": 0.25}, {"w": "c", "p": 0.25}], "t": 12}
	{"id": "r3", "status": "error", "e": "substring size 9 exceeds shortest individual (5 symbols)", "c": 422}

Codes: 400 malformed or over-limit requests, 422 inputs the routines reject,
508 an exhausted resampling loop, 500 anything else.
*/
package server

// Actions understood by the server.
const (
	ActionNextWord      = "next_word"
	ActionLengthBuckets = "length_buckets"
	ActionSubstrings    = "substrings"
	ActionVocab         = "vocab"
	ActionHealth        = "health"
)

// Response status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusReady = "ready"
)

// Error codes.
const (
	CodeBadRequest    = 400
	CodeRejected      = 422
	CodeInternal      = 500
	CodeLimitExceeded = 508
)

// Request is a single IPC request. Fields unused by the action are ignored.
type Request struct {
	ID         string     `msgpack:"id"`
	Action     string     `msgpack:"action"`
	Population []string   `msgpack:"population,omitempty"`
	Prefix     []string   `msgpack:"prefix,omitempty"`
	Reviews    [][]string `msgpack:"reviews,omitempty"`
	Target     string     `msgpack:"target,omitempty"`
	Size       int        `msgpack:"size,omitempty"`
	Seed       *uint64    `msgpack:"seed,omitempty"`
	Letters    string     `msgpack:"letters,omitempty"`
}

// ProbEntry is one candidate of a next-word distribution.
type ProbEntry struct {
	Word string  `msgpack:"w"`
	Prob float64 `msgpack:"p"`
}

// BucketEntry is one word-length bucket.
type BucketEntry struct {
	Length int `msgpack:"n"`
	Count  int `msgpack:"c"`
}

// CountEntry is one sampled substring and its occurrence count.
type CountEntry struct {
	Substring string `msgpack:"s"`
	Count     int    `msgpack:"c"`
}

// Response answers one Request. Entry slices keep the routine's order.
type Response struct {
	ID        string        `msgpack:"id"`
	Status    string        `msgpack:"status"`
	Probs     []ProbEntry   `msgpack:"probs,omitempty"`
	Buckets   []BucketEntry `msgpack:"buckets,omitempty"`
	Counts    []CountEntry  `msgpack:"counts,omitempty"`
	Words     []string      `msgpack:"words,omitempty"`
	Error     string        `msgpack:"e,omitempty"`
	Code      int           `msgpack:"c,omitempty"`
	TimeTaken int64         `msgpack:"t"`
}
