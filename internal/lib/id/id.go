// Package id generates opaque record identifiers for the key-value backend.
package id

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const randomLen = 9

// New returns "<unix-millis>-<9 random chars>". Callers must treat the value as opaque.
func New() string {
	return NewAt(time.Now())
}

func NewAt(t time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomLen]

	return strconv.FormatInt(t.UnixMilli(), 10) + "-" + random
}
