package statusbar

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
)

type Sink interface {
	Write(line string) error
}

// FileSink replaces the file on every write, so a reader such as tmux never
// sees a partial line.
type FileSink struct {
	path string
}

func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("[statusbar_sink] invalid path")
	}

	return &FileSink{path: path}, nil
}

func (s *FileSink) Write(line string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(line + "\n"); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

type WriterSink struct {
	mx sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(line string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	_, err := io.WriteString(s.w, line+"\n")
	return err
}
