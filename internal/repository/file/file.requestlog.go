// FilePath: internal/repository/file/file.requestlog.go
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

const requestLogTimeFormat = "2006-01-02 15:04:05"

// RequestLog appends one timestamped diagnostic line per ingest request,
// the file-backed variant's on-disk audit trail. A write failure is logged
// and swallowed; diagnostics must never fail a request.
type RequestLog struct {
	mu   sync.Mutex
	path string
}

func NewRequestLog(path string) (*RequestLog, error) {
	if err := createDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return &RequestLog{path: path}, nil
}

func (l *RequestLog) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		nuts.L.Warnf("[RequestLog] Failed to open request log: %v", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(requestLogTimeFormat), fmt.Sprintf(format, args...))
	if _, err := f.WriteString(line); err != nil {
		nuts.L.Warnf("[RequestLog] Failed to write request log entry: %v", err)
	}
}
