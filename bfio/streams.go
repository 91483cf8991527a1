// Package bfio resolves stream specs into the byte streams a program run
// reads and writes.
package bfio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
)

// Streams holds the byte streams of one program run. A nil In or Out
// means the capability is absent; the engine reports ErrNoReader or
// ErrNoWriter if the program then does I/O.
type Streams struct {
	In  io.Reader
	Out io.Writer

	closers []io.Closer
}

// Close releases stream resources. Stdio is never closed. An HTTP output
// sink posts its collected bytes here.
func (s *Streams) Close() error {
	var errs []error
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenStreams resolves an input and an output spec. Specs:
//
//	"-"            stdin / stdout
//	"none" or ""   absent capability
//	http(s) URL    GET body as input; output POSTed on Close
//	anything else  file path
type OpenStreams func(inSpec, outSpec string) (*Streams, error)

func (Module) OpenStreams(
	client nets.HTTPClient,
	logger logs.Logger,
) OpenStreams {
	return func(inSpec, outSpec string) (ret *Streams, err error) {
		ret = &Streams{}
		defer func() {
			if err != nil {
				ret.Close()
			}
		}()

		switch {
		case inSpec == "" || inSpec == "none":
		case inSpec == "-":
			ret.In = os.Stdin
		case isURL(inSpec):
			resp, err := client.Get(inSpec)
			if err != nil {
				return ret, fmt.Errorf("open input: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return ret, fmt.Errorf("open input: %s from %s", resp.Status, inSpec)
			}
			ret.In = resp.Body
			ret.closers = append(ret.closers, resp.Body)
		default:
			f, err := os.Open(inSpec)
			if err != nil {
				return ret, fmt.Errorf("open input: %w", err)
			}
			ret.In = f
			ret.closers = append(ret.closers, f)
		}

		switch {
		case outSpec == "" || outSpec == "none":
		case outSpec == "-":
			ret.Out = os.Stdout
		case isURL(outSpec):
			sink := &httpSink{
				client: client,
				url:    outSpec,
				logger: logger,
			}
			ret.Out = sink
			ret.closers = append(ret.closers, sink)
		default:
			f, err := os.Create(outSpec)
			if err != nil {
				return ret, fmt.Errorf("open output: %w", err)
			}
			ret.Out = f
			ret.closers = append(ret.closers, f)
		}

		return ret, nil
	}
}

func isURL(spec string) bool {
	return strings.HasPrefix(spec, "http://") ||
		strings.HasPrefix(spec, "https://")
}

// httpSink collects output bytes and posts them in one request when the
// run is over.
type httpSink struct {
	client nets.HTTPClient
	url    string
	logger logs.Logger
	buf    bytes.Buffer
}

func (s *httpSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *httpSink) Close() error {
	resp, err := s.client.Post(s.url, "application/octet-stream", &s.buf)
	if err != nil {
		return fmt.Errorf("post output: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("post output: %s from %s", resp.Status, s.url)
	}
	s.logger.Info("output posted",
		"url", s.url,
		"status", resp.Status,
	)
	return nil
}
