package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordprob/internal/logger"
	"github.com/bastiangx/wordprob/pkg/config"
	"github.com/bastiangx/wordprob/pkg/corpus"
	"github.com/bastiangx/wordprob/pkg/stats"
	"github.com/bastiangx/wordprob/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC over a reader/writer pair.
type Server struct {
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
	log          *log.Logger
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server")
	if err := s.encoder.Encode(Response{Status: StatusReady}); err != nil {
		return fmt.Errorf("failed to write ready message: %w", err)
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requestCount++

		var req Request
		var resp Response
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			resp = errorResponse("", CodeBadRequest, "invalid msgpack request")
		} else {
			resp = s.Handle(req)
		}

		if err := s.encoder.Encode(resp); err != nil {
			log.Errorf("Writing response: %v", err)
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// Handle runs a single request and builds its response.
func (s *Server) Handle(req Request) Response {
	start := time.Now()

	var resp Response
	switch req.Action {
	case ActionNextWord:
		resp = s.handleNextWord(req)
	case ActionLengthBuckets:
		resp = s.handleLengthBuckets(req)
	case ActionSubstrings:
		resp = s.handleSubstrings(req)
	case ActionVocab:
		resp = s.handleVocab(req)
	case ActionHealth:
		resp = Response{Status: StatusOK}
	default:
		resp = errorResponse(req.ID, CodeBadRequest, fmt.Sprintf("unknown action: %q", req.Action))
	}

	resp.ID = req.ID
	resp.TimeTaken = time.Since(start).Microseconds()
	log.Debug("Handled request", "id", req.ID, "action", req.Action, "status", resp.Status, "us", resp.TimeTaken)
	return resp
}

func (s *Server) handleNextWord(req Request) Response {
	if len(req.Population) > s.config.Server.MaxPopulation {
		return errorResponse(req.ID, CodeBadRequest, fmt.Sprintf("population exceeds limit of %d", s.config.Server.MaxPopulation))
	}

	probs, err := stats.NextWordDistribution(req.Population, req.Prefix, corpus.Batch(req.Reviews), append(s.config.EstimatorOptions(), stats.WithLogger(s.log))...)
	if err != nil {
		return fromError(req.ID, err)
	}

	entries := make([]ProbEntry, 0, probs.Len())
	probs.Each(func(w string, p float64) bool {
		entries = append(entries, ProbEntry{Word: w, Prob: p})
		return true
	})
	return Response{Status: StatusOK, Probs: entries}
}

func (s *Server) handleLengthBuckets(req Request) Response {
	buckets, err := stats.ExpectedLengthDistribution(req.Prefix, corpus.Batch(req.Reviews), append(s.config.BucketOptions(), stats.WithLogger(s.log))...)
	if err != nil {
		return fromError(req.ID, err)
	}

	entries := make([]BucketEntry, 0, buckets.Len())
	buckets.Each(func(n, c int) bool {
		entries = append(entries, BucketEntry{Length: n, Count: c})
		return true
	})
	return Response{Status: StatusOK, Buckets: entries}
}

func (s *Server) handleSubstrings(req Request) Response {
	if len(req.Population) > s.config.Server.MaxPopulation {
		return errorResponse(req.ID, CodeBadRequest, fmt.Sprintf("population exceeds limit of %d", s.config.Server.MaxPopulation))
	}
	if req.Size > s.config.Server.MaxSubstringSize {
		return errorResponse(req.ID, CodeBadRequest, fmt.Sprintf("substring size exceeds limit of %d", s.config.Server.MaxSubstringSize))
	}

	opts := append(s.config.SamplerOptions(), stats.WithLogger(s.log))
	if req.Seed != nil {
		opts = append(opts, stats.WithSource(stats.NewSource(*req.Seed)))
	}

	counts, err := stats.SubstringFrequencies(req.Population, req.Target, req.Size, opts...)
	if err != nil {
		return fromError(req.ID, err)
	}

	entries := make([]CountEntry, 0, counts.Len())
	counts.Each(func(sub string, c int) bool {
		entries = append(entries, CountEntry{Substring: sub, Count: c})
		return true
	})
	return Response{Status: StatusOK, Counts: entries}
}

func (s *Server) handleVocab(req Request) Response {
	v := vocab.Build(corpus.Batch(req.Reviews))
	return Response{Status: StatusOK, Words: v.Candidates(req.Letters)}
}

// fromError maps routine errors onto response codes.
func fromError(id string, err error) Response {
	code := CodeInternal
	switch {
	case errors.Is(err, corpus.ErrShape),
		errors.Is(err, stats.ErrEmptyPopulation),
		errors.Is(err, stats.ErrInvalidSubstringSize):
		code = CodeRejected
	case errors.Is(err, stats.ErrRecursionLimitExceeded):
		code = CodeLimitExceeded
	}
	return errorResponse(id, code, err.Error())
}

func errorResponse(id string, code int, message string) Response {
	return Response{
		ID:     id,
		Status: StatusError,
		Error:  message,
		Code:   code,
	}
}
