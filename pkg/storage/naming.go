package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// IsPDFName reports whether a declared upload name carries the .pdf extension.
func IsPDFName(name string) bool {
	return strings.HasSuffix(name, ".pdf")
}

// SanitizeName replaces every rune outside [A-Za-z0-9.-] with an underscore, which
// also strips path separators.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Namer produces "<millisecond-timestamp>-<sanitized-name>" object names. Stamps
// are strictly increasing within a process, so two uploads never share a name.
type Namer struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewNamer builds a Namer reading the given clock; nil means time.Now.
func NewNamer(now func() time.Time) *Namer {
	if now == nil {
		now = time.Now
	}
	return &Namer{now: now}
}

// Name returns a fresh object name for the original upload name.
func (n *Namer) Name(original string) string {
	n.mu.Lock()
	stamp := n.now().UnixMilli()
	if stamp <= n.last {
		stamp = n.last + 1
	}
	n.last = stamp
	n.mu.Unlock()

	return fmt.Sprintf("%d-%s", stamp, SanitizeName(original))
}
