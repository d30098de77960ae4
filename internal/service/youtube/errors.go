package youtube

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"google.golang.org/api/googleapi"
)

// QuotaExceededError is returned before a request is sent when the remaining
// daily budget cannot cover it. Callers must not retry; the reset time tells
// them when the budget returns.
type QuotaExceededError struct {
	Used      int
	Limit     int
	Requested int
	ResetTime time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("YouTube API quota exceeded: used %d/%d, requested %d more (resets %s)",
		e.Used, e.Limit, e.Requested, e.ResetTime.Format(time.RFC3339))
}

func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}

// wrapAPIError converts a Data API transport failure into the shared
// taxonomy, preserving the upstream message verbatim.
func wrapAPIError(operation string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return apperrors.NewAPIError(fmt.Sprintf("%s failed", operation), gerr.Code, err)
	}
	return apperrors.NewAPIError(fmt.Sprintf("%s failed", operation), 0, err)
}
