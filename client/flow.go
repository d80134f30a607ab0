package client

import (
	"context"
	"errors"
	"sync"

	"github.com/realtorcrm/authsvc/domain"
	"github.com/realtorcrm/authsvc/pkg/logger"
)

// Navigator receives navigation effects. Flow methods only call it after
// their state mutation has committed, never while state is being read,
// so a navigation can never re-enter the flow mid-transition.
type Navigator interface {
	Navigate(path string)
}

// Well-known routes the auth flows navigate between.
const (
	PathHome          = "/"
	PathLogin         = "/login"
	PathDashboard     = "/dashboard"
	PathVerification  = "/verification"
	PathSignupOptions = "/signup-options"
	PathRoleSelect    = "/select-role"
	PathPayment       = "/payment"
)

// FlowState is a step of the signup/verification sequence.
type FlowState string

const (
	StateCollectingProfile FlowState = "COLLECTING_PROFILE"
	StateChoosingMethod    FlowState = "CHOOSING_VERIFICATION_METHOD"
	StateAwaitingCode      FlowState = "AWAITING_CODE"
	StateVerified          FlowState = "VERIFIED"
)

// SignupFlow drives the registration sequence
// CollectingProfile -> ChoosingMethod -> AwaitingCode -> Verified.
//
// Each submission carries a sequence token: a response that arrives after
// a newer submission started is discarded, and starting a submission
// aborts the previous in-flight request. Close cancels everything still
// in flight, scoping requests to the flow's lifetime.
type SignupFlow struct {
	gw    *Gateway
	store *SessionStore
	nav   Navigator

	mu           sync.Mutex
	state        FlowState
	draft        domain.SignupDraft
	verification domain.VerificationState
	lastErr      *domain.Error
	loading      bool
	seq          uint64
	inflight     context.CancelFunc

	root       context.Context
	rootCancel context.CancelFunc
}

// NewSignupFlow creates a flow in the profile-collection state.
func NewSignupFlow(gw *Gateway, store *SessionStore, nav Navigator) *SignupFlow {
	root, cancel := context.WithCancel(context.Background())
	return &SignupFlow{
		gw:         gw,
		store:      store,
		nav:        nav,
		state:      StateCollectingProfile,
		root:       root,
		rootCancel: cancel,
	}
}

// Close aborts any in-flight request and clears the signup context. The
// sequence token advances so a response that already left the server
// before cancellation can no longer commit.
func (f *SignupFlow) Close() {
	f.rootCancel()
	f.mu.Lock()
	f.seq++
	f.loading = false
	f.inflight = nil
	f.draft = domain.SignupDraft{}
	f.verification = domain.VerificationState{}
	f.mu.Unlock()
}

// State returns the current flow step.
func (f *SignupFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the error surfaced by the last submission, or nil.
func (f *SignupFlow) Err() *domain.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// ClearErr drops the surfaced error, as when the user edits the form.
func (f *SignupFlow) ClearErr() {
	f.mu.Lock()
	f.lastErr = nil
	f.mu.Unlock()
}

// Loading reports whether a submission is in flight. Callers disable the
// triggering control while true; the sequence tokens remain the real
// guard against out-of-order responses.
func (f *SignupFlow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Draft returns a copy of the in-progress registration.
func (f *SignupFlow) Draft() domain.SignupDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft fields while collecting the profile.
func (f *SignupFlow) SetDraft(draft domain.SignupDraft) {
	f.mu.Lock()
	if f.state == StateCollectingProfile || f.state == StateChoosingMethod {
		f.draft = draft
		f.lastErr = nil
	}
	f.mu.Unlock()
}

// ChooseMethod records the verification channel choice.
func (f *SignupFlow) ChooseMethod(method domain.ContactMethod) {
	f.mu.Lock()
	if f.state == StateCollectingProfile || f.state == StateChoosingMethod {
		f.draft.Method = method
		f.state = StateChoosingMethod
	}
	f.mu.Unlock()
}

// SetUserType records the role chosen on the role-selection screen.
func (f *SignupFlow) SetUserType(role domain.Role) {
	f.mu.Lock()
	f.draft.UserType = role
	f.mu.Unlock()
}

// Verification returns the current verification context.
func (f *SignupFlow) Verification() domain.VerificationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verification
}

// EnterVerification is the precondition guard for the verification
// screen: with no signup context it redirects to the signup entry and
// reports false, so the code-entry form is never rendered.
func (f *SignupFlow) EnterVerification() bool {
	f.mu.Lock()
	empty := f.verification.IsEmpty()
	f.mu.Unlock()

	if empty {
		log := logger.Get()
		log.Debug().Msg("verification entered without signup context")
		f.nav.Navigate(PathSignupOptions)
		return false
	}
	return true
}

// SubmitProfile validates the draft and dispatches the signup request.
// Validation failures and a missing user type never reach the network:
// the former surface inline, the latter redirects to role selection.
// A request failure leaves the form fields intact.
func (f *SignupFlow) SubmitProfile() {
	f.mu.Lock()
	if f.state != StateCollectingProfile && f.state != StateChoosingMethod {
		f.mu.Unlock()
		return
	}

	if f.draft.UserType == "" {
		f.mu.Unlock()
		f.nav.Navigate(PathRoleSelect)
		return
	}

	if verr := ValidateDraft(&f.draft); verr != nil {
		f.lastErr = verr
		f.mu.Unlock()
		return
	}

	draft := f.draft
	ctx, seq := f.beginLocked()
	f.mu.Unlock()

	_, err := f.gw.Signup(ctx, &draft)

	var navigate bool
	f.apply(seq, func() {
		if err != nil {
			f.lastErr = tagged(err)
			return
		}
		f.verification = domain.VerificationState{
			Contact: draft.Contact(),
			Method:  draft.Method.Channel(),
		}
		f.state = StateAwaitingCode
		f.lastErr = nil
		navigate = true
	})

	if navigate {
		f.nav.Navigate(PathVerification)
	}
}

// SubmitCode dispatches the one-time code. On success the session is
// populated, the signup context is cleared and the flow navigates to the
// payment step. On failure the entered code stays in place for editing.
func (f *SignupFlow) SubmitCode(code string) {
	f.mu.Lock()
	if f.state != StateAwaitingCode {
		f.mu.Unlock()
		return
	}
	f.verification.CodeAttempt = code
	contact := f.verification.Contact
	ctx, seq := f.beginLocked()
	f.mu.Unlock()

	data, err := f.gw.VerifySignup(ctx, contact, code)

	var navigate bool
	f.apply(seq, func() {
		if err != nil {
			f.lastErr = tagged(err)
			return
		}
		f.state = StateVerified
		f.draft = domain.SignupDraft{}
		f.verification = domain.VerificationState{}
		f.lastErr = nil
		navigate = true
	})

	if navigate {
		f.store.SetCredentials(data.Token, data.User)
		f.nav.Navigate(PathPayment)
	}
}

// ResendCode fires a resend request without waiting for the outcome.
func (f *SignupFlow) ResendCode() {
	f.mu.Lock()
	if f.state != StateAwaitingCode {
		f.mu.Unlock()
		return
	}
	contact := f.verification.Contact
	f.mu.Unlock()

	go func() {
		_ = f.gw.RequestVerificationCode(f.root, contact)
	}()
}

// beginLocked starts a submission: the previous in-flight request is
// aborted and a fresh sequence token is minted. Callers hold f.mu.
func (f *SignupFlow) beginLocked() (context.Context, uint64) {
	if f.inflight != nil {
		f.inflight()
	}
	ctx, cancel := context.WithCancel(f.root)
	f.inflight = cancel
	f.seq++
	f.loading = true
	return ctx, f.seq
}

// apply commits a submission outcome unless a newer submission has
// superseded it, in which case the stale outcome is discarded.
func (f *SignupFlow) apply(seq uint64, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return
	}
	f.loading = false
	fn()
}

func tagged(err error) *domain.Error {
	var e *domain.Error
	if errors.As(err, &e) {
		return e
	}
	return domain.NewNetworkError(err.Error(), err)
}
