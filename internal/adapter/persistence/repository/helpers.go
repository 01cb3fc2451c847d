package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"insurance_quotes/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// storeErr maps a failed conditional write to ErrConcurrentModification and
// everything else to ErrStoreUnavailable.
func storeErr(op string, err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConcurrentModification
	}
	return fmt.Errorf("%w: %s: %v", interfaces.ErrStoreUnavailable, op, err)
}
