// Package journal records the raw input of a session as compressed JSON
// lines and replays it against a fresh engine.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/engine"
)

// Version is the journal format written by this package.
const Version = 1

// Extension is the file suffix of journal files.
const Extension = ".jsonl.zst"

// Header is the first line of a journal.
type Header struct {
	Version  int       `json:"version"`
	Session  string    `json:"session"`
	Scenario string    `json:"scenario"`
	Seed     int64     `json:"seed"`
	Started  time.Time `json:"started"`
}

// TickEntry is one tick that polled input or dispatched a command. Ticks
// with neither are not written.
type TickEntry struct {
	Tick    int64            `json:"tick"`
	Events  []core.RawEvent  `json:"events,omitempty"`
	Command *command.Command `json:"cmd,omitempty"`
}

// line is one JSONL record. Exactly one field is set.
type line struct {
	Header *Header          `json:"header,omitempty"`
	Tick   *TickEntry       `json:"tick,omitempty"`
	End    *engine.Snapshot `json:"end,omitempty"`
}

// Path returns the journal file of a session under dir.
func Path(dir, session string) string {
	return filepath.Join(dir, session+Extension)
}

// Writer writes a zstd-compressed journal.
type Writer struct {
	f   io.Closer
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens a journal file, creating its directory, and writes the
// header.
func Create(path string, h Header) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	w, err := NewWriter(f, h)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.f = f
	return w, nil
}

// NewWriter starts a journal on dst and writes the header. Closing the
// Writer does not close dst.
func NewWriter(dst io.Writer, h Header) (*Writer, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	w := &Writer{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}
	if h.Version == 0 {
		h.Version = Version
	}
	if err := w.write(line{Header: &h}); err != nil {
		_ = enc.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) write(l line) error {
	b, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	return nil
}

// WriteTick appends one tick.
func (w *Writer) WriteTick(t TickEntry) error {
	return w.write(line{Tick: &t})
}

// End appends the final snapshot.
func (w *Writer) End(s engine.Snapshot) error {
	return w.write(line{End: &s})
}

// Close flushes the journal and closes the file opened by Create.
func (w *Writer) Close() error {
	var errs []error
	if w.w != nil {
		errs = append(errs, w.w.Flush())
		w.w = nil
	}
	if w.enc != nil {
		errs = append(errs, w.enc.Close())
		w.enc = nil
	}
	if w.f != nil {
		errs = append(errs, w.f.Close())
		w.f = nil
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}

// Journal is a decoded journal.
type Journal struct {
	Header Header
	Ticks  []TickEntry
	End    *engine.Snapshot // Nil when the session did not end cleanly
}

// Commands returns how many commands the session dispatched.
func (j *Journal) Commands() int {
	n := 0
	for _, t := range j.Ticks {
		if t.Command != nil {
			n++
		}
	}
	return n
}

// Open reads a journal file.
func Open(path string) (*Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer f.Close()
	j, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return j, nil
}

// Read decodes a journal. Ticks must be strictly increasing.
func Read(r io.Reader) (*Journal, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var j Journal
	n := 0
	last := int64(-1)
	for sc.Scan() {
		n++
		var l line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return nil, fmt.Errorf("journal: line %d: %w", n, err)
		}
		switch {
		case n == 1:
			if l.Header == nil {
				return nil, fmt.Errorf("journal: line 1: missing header")
			}
			if l.Header.Version != Version {
				return nil, fmt.Errorf("journal: unsupported version %d", l.Header.Version)
			}
			j.Header = *l.Header
		case j.End != nil:
			return nil, fmt.Errorf("journal: line %d: entry after end", n)
		case l.Tick != nil:
			if l.Tick.Tick <= last {
				return nil, fmt.Errorf("journal: line %d: tick %d after %d", n, l.Tick.Tick, last)
			}
			last = l.Tick.Tick
			j.Ticks = append(j.Ticks, *l.Tick)
		case l.End != nil:
			if l.End.Tick <= last {
				return nil, fmt.Errorf("journal: line %d: end at tick %d before last entry %d", n, l.End.Tick, last)
			}
			j.End = l.End
		default:
			return nil, fmt.Errorf("journal: line %d: empty record", n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("journal: empty")
	}
	return &j, nil
}
