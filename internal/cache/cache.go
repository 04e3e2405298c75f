package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ppiankov/evenodd/internal/model"
)

// Cache stores verdicts of previously classified inputs
type Cache interface {
	Get(key string) (model.Entry, bool)
	Set(key string, entry model.Entry, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// Key identifies an input classified for kind under opts. Two calls with the
// same key always produce the same verdict.
func Key(input, kind string, opts model.Options) string {
	raw := fmt.Sprintf("%s|%t|%t|%t|%t|%t|%s",
		kind,
		opts.ThrowOnNonNumber,
		opts.ThrowOnNonInteger,
		opts.ThrowOnNonFinite,
		opts.ThrowOnNaN,
		opts.AllowNumberStrings,
		input,
	)
	hash := sha256.Sum256([]byte(raw))
	return "evenodd:v1:" + hex.EncodeToString(hash[:])
}
