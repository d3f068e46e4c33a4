package paladins

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
)

const timestampLayout = "20060102150405"

// Signer computes the per-request signature the server expects. A signature is
// bound to the timestamp it was computed for.
type Signer struct {
	devID   string
	authKey string
}

func NewSigner(creds domain.Credentials) Signer {
	return Signer{devID: creds.DevID, authKey: creds.AuthKey}
}

func (s Signer) Sign(method, timestamp string) string {
	sum := md5.Sum([]byte(s.devID + method + s.authKey + timestamp))
	return hex.EncodeToString(sum[:])
}

// Timestamp formats t as UTC yyyyMMddHHmmss.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
