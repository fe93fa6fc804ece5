package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// AuditSubmitter records each request as a YAML document appended to Path.
// A lock file next to it serialises writers across processes.
type AuditSubmitter struct {
	Path string
}

// Submit implements Submitter.
func (a AuditSubmitter) Submit(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return err
	}

	lock := flock.New(a.Path + ".lock")
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("locking audit log: %w", err)
	}
	if !locked {
		return fmt.Errorf("locking audit log: %s is busy", a.Path)
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(req)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(a.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append([]byte("---\n"), data...)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadAudit reads back every request recorded at path.
func ReadAudit(path string) ([]Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Request
	dec := yaml.NewDecoder(f)
	for {
		var req Request
		err := dec.Decode(&req)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, req)
	}
}
