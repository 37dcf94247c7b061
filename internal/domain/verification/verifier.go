package verification

import (
	"context"
	"strings"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

// Applicant is the teacher signup data a code is checked against.
type Applicant struct {
	Name  string
	Email string
}

// CodeVerifier decides whether a supplied code admits a teacher signup.
type CodeVerifier interface {
	// Verify returns nil when code is accepted, ErrVerificationFailed when it is
	// not, and ErrInvalidInput when the applicant data cannot be checked.
	Verify(ctx context.Context, applicant Applicant, code string) error

	// Consume marks the code used once the account exists. Codes that can be
	// reused make it a no-op.
	Consume(ctx context.Context, invites repository.InviteRepository, applicant Applicant) error
}

// NameCodeVerifier accepts the code derived from the applicant's name.
type NameCodeVerifier struct{}

// NewNameCodeVerifier creates a NameCodeVerifier.
func NewNameCodeVerifier() *NameCodeVerifier {
	return &NameCodeVerifier{}
}

// Verify compares code, as text and untrimmed, with the derived code.
func (v *NameCodeVerifier) Verify(_ context.Context, applicant Applicant, code string) error {
	expected, err := DeriveCodeString(applicant.Name)
	if err != nil {
		return err
	}
	if code != expected {
		return domainerrors.ErrVerificationFailed
	}

	return nil
}

// Consume is a no-op.
func (v *NameCodeVerifier) Consume(context.Context, repository.InviteRepository, Applicant) error {
	return nil
}

// InviteCodeVerifier accepts an admin-issued code bound to the applicant's email.
type InviteCodeVerifier struct {
	invites repository.InviteRepository
	hasher  service.CodeHasher
	now     service.Clock
}

// NewInviteCodeVerifier creates an InviteCodeVerifier.
func NewInviteCodeVerifier(invites repository.InviteRepository, hasher service.CodeHasher, now service.Clock) *InviteCodeVerifier {
	if now == nil {
		now = service.SystemClock
	}

	return &InviteCodeVerifier{invites: invites, hasher: hasher, now: now}
}

// Verify checks code against an unexpired, unconsumed invite for the applicant's email.
func (v *InviteCodeVerifier) Verify(ctx context.Context, applicant Applicant, code string) error {
	email := NormalizeEmail(applicant.Email)
	if email == "" || code == "" {
		return domainerrors.ErrInvalidInput.WithDetails("email and code are required")
	}

	invite, err := v.invites.Find(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInviteNotFound) {
			return domainerrors.ErrVerificationFailed
		}

		return domainerrors.ErrLookupFailed.WithCause(err)
	}

	if !invite.Usable(v.now()) || !v.hasher.Check(code, invite.CodeHash) {
		return domainerrors.ErrVerificationFailed
	}

	return nil
}

// Consume marks the applicant's invite as used.
func (v *InviteCodeVerifier) Consume(ctx context.Context, invites repository.InviteRepository, applicant Applicant) error {
	if invites == nil {
		invites = v.invites
	}

	return invites.MarkConsumed(ctx, NormalizeEmail(applicant.Email), v.now())
}

// NormalizeEmail lower-cases and trims an email used as an invite key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
