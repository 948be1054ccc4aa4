package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tracking/internal/pkg/errs"
)

// trackingNumberPattern matches the canonical tracking number format:
// the TRK prefix, six digits taken from the creation timestamp, and six
// uppercase hex characters of randomness.
var trackingNumberPattern = regexp.MustCompile(`^TRK\d{6}[A-F0-9]{6}$`)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not
// created through one of the constructor functions.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is a value object holding the public identifier customers
// use to track a shipment, e.g. "TRK859243AB7D2F".
//
// The zero value is invalid; use NewTrackingNumber to generate a fresh number
// or TrackingNumberFromString to parse one received over the API.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a new tracking number.
//
// The format is "TRK" + the last six digits of the current unix-milli
// timestamp + six uppercase hex characters from crypto/rand. The timestamp
// part keeps numbers roughly ordered by creation time; the random part makes
// collisions unlikely. Uniqueness is ultimately enforced by the storage
// layer's unique index, with the caller retrying on collision.
func NewTrackingNumber() (TrackingNumber, error) {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	timestampPart := millis[len(millis)-6:]

	randomBytes := make([]byte, 3)
	if _, err := rand.Read(randomBytes); err != nil {
		return TrackingNumber{}, fmt.Errorf("failed to generate tracking number randomness: %w", err)
	}
	randomPart := strings.ToUpper(hex.EncodeToString(randomBytes))

	return TrackingNumber{value: "TRK" + timestampPart + randomPart}, nil
}

// TrackingNumberFromString parses and validates a tracking number received
// from an external source.
//
// Returns an error if the string does not match the canonical format
// (TRK followed by six digits and six uppercase hex characters).
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("tracking number is invalid",
			fmt.Errorf("%q does not match format TRK followed by 12 characters", s))
	}

	return TrackingNumber{value: s}, nil
}

// String returns the tracking number as it appears in API payloads and
// storage.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the TrackingNumber is properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
