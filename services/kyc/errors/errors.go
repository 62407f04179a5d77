package errors

import "fmt"

// Common error types for KYC providers
type (
	ErrDuplicateApplicant  struct{ ExternalUserID string }
	ErrApplicantNotFound   struct{ ExternalUserID string }
	ErrProviderUnreachable struct{ Err error }
	ErrProviderResponse    struct{ Err error }
)

func (e ErrDuplicateApplicant) Error() string {
	return fmt.Sprintf("an applicant already exists for %s and the retry budget is exhausted", e.ExternalUserID)
}

func (e ErrApplicantNotFound) Error() string {
	return fmt.Sprintf("no applicant found for %s", e.ExternalUserID)
}

func (e ErrProviderUnreachable) Error() string {
	return fmt.Sprintf("couldn't reach identity provider: %v", e.Err)
}

func (e ErrProviderResponse) Error() string {
	return fmt.Sprintf("identity provider rejected the request: %v", e.Err)
}
