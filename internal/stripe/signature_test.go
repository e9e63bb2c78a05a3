package stripe

import (
	"testing"
	"time"

	"github.com/mysteryidea/ledgerd/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"charge.refunded"}`)
	secret := "whsec_test"
	now := time.Now()

	tests := []struct {
		name      string
		payload   []byte
		header    string
		secret    string
		wantError bool
	}{
		{
			name:    "valid signature",
			payload: payload,
			header:  SignPayload(payload, secret, now),
			secret:  secret,
		},
		{
			name:      "empty header",
			payload:   payload,
			header:    "",
			secret:    secret,
			wantError: true,
		},
		{
			name:      "empty secret",
			payload:   payload,
			header:    SignPayload(payload, secret, now),
			secret:    "",
			wantError: true,
		},
		{
			name:      "wrong secret",
			payload:   payload,
			header:    SignPayload(payload, "whsec_other", now),
			secret:    secret,
			wantError: true,
		},
		{
			name:      "tampered payload",
			payload:   []byte(`{"id":"evt_2","type":"charge.refunded"}`),
			header:    SignPayload(payload, secret, now),
			secret:    secret,
			wantError: true,
		},
		{
			name:      "stale timestamp",
			payload:   payload,
			header:    SignPayload(payload, secret, now.Add(-time.Hour)),
			secret:    secret,
			wantError: true,
		},
		{
			name:      "garbage header",
			payload:   payload,
			header:    "t=notanumber,v1=deadbeef",
			secret:    secret,
			wantError: true,
		},
		{
			name:      "missing v1 part",
			payload:   payload,
			header:    "t=1700000000",
			secret:    secret,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature(tt.payload, tt.header, tt.secret, DefaultSignatureTolerance)
			if tt.wantError {
				assert.ErrorIs(t, err, apperrors.ErrSignatureInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifySignature_MultipleV1(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"

	// A rotated-secret delivery carries one stale and one valid v1.
	valid := SignPayload(payload, secret, time.Now())
	header := "t=" + valid[2:12] + ",v1=0000000000000000000000000000000000000000000000000000000000000000," + valid[13:]

	err := VerifySignature(payload, header, secret, 0)
	assert.NoError(t, err)
}
