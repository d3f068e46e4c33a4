package paladins

import (
	"testing"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSignMatchesKnownDigest(t *testing.T) {
	t.Parallel()

	signer := NewSigner(domain.Credentials{DevID: "2557", AuthKey: "E9A6FA1D226C45B1AAF8321822937182"})

	assert.Equal(t, "a57c50bffc22dff85e966d3cfdbb7c5e", signer.Sign("getplayer", "20240101120000"))
}

func TestSignIsDeterministicAndInputSensitive(t *testing.T) {
	t.Parallel()

	base := NewSigner(domain.Credentials{DevID: "2557", AuthKey: "secret"})
	want := base.Sign("getplayer", "20240101120000")

	assert.Equal(t, want, base.Sign("getplayer", "20240101120000"))
	assert.Len(t, want, 32)

	variants := map[string]string{
		"dev id":    NewSigner(domain.Credentials{DevID: "2558", AuthKey: "secret"}).Sign("getplayer", "20240101120000"),
		"auth key":  NewSigner(domain.Credentials{DevID: "2557", AuthKey: "secreT"}).Sign("getplayer", "20240101120000"),
		"method":    base.Sign("getplayers", "20240101120000"),
		"timestamp": base.Sign("getplayer", "20240101120001"),
	}
	for name, got := range variants {
		assert.NotEqual(t, want, got, name)
	}
}

func TestTimestampIsUTCSecondResolution(t *testing.T) {
	t.Parallel()

	local := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, 3, 9, 1, 4, 5, 999_000_000, local)

	assert.Equal(t, "20240308230405", Timestamp(at))
}
