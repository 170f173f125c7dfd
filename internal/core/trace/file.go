package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
)

const maxRecordSize = 16 << 20

// FileRecorder writes a trace as JSON lines.
type FileRecorder struct {
	w      *bufio.Writer
	enc    *json.Encoder
	closer io.Closer
}

// NewFileRecorder writes to w. Close flushes but does not close w.
func NewFileRecorder(w io.Writer) *FileRecorder {
	bw := bufio.NewWriter(w)
	return &FileRecorder{w: bw, enc: json.NewEncoder(bw)}
}

// CreateFile truncates path and records into it.
func CreateFile(path string) (*FileRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	r := NewFileRecorder(f)
	r.closer = f
	return r, nil
}

func (r *FileRecorder) write(rec Record) error {
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("write %s: %w", rec.Kind, err)
	}
	return nil
}

func (r *FileRecorder) Header(h Header) error { return r.write(Record{Kind: KindHeader, Header: &h}) }
func (r *FileRecorder) Tick(t Tick) error     { return r.write(Record{Kind: KindTick, Tick: &t}) }

func (r *FileRecorder) Footer(f Footer) error {
	if err := r.write(Record{Kind: KindFooter, Footer: &f}); err != nil {
		return err
	}
	return r.w.Flush()
}

func (r *FileRecorder) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
		r.closer = nil
	}
	return err
}

// ReadAll decodes a trace written by FileRecorder.
func ReadAll(rd io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	var out []Record
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return out, fmt.Errorf("read record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}
