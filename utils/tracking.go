// utils/tracking.go
package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTrackingID builds a public tracking code in the form
// <PREFIX><YYYYMMDD><4-digit-suffix>, e.g. MFZ202412250015.
//
// The date groups codes by day; the 4-digit suffix is random, so two bookings
// on the same day have a 1-in-10,000 collision chance. The generator itself
// does not check for collisions — callers must verify the code against the
// store and regenerate on conflict.
func GenerateTrackingID(prefix string) string {
	today := time.Now()
	suffix := rand.Intn(10000)
	return fmt.Sprintf("%s%s%04d", prefix, today.Format("20060102"), suffix)
}
