package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NoticeKind is the tone of a notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	if k == NoticeSuccess {
		return "success"
	}
	return "error"
}

// Notice texts and timings.
const (
	NoticeInvalid = "Please fix the errors in the form"
	NoticeSent    = "Message sent successfully! I'll get back to you soon."
	NoticeFailed  = "Failed to send message. Please try again or email me directly."

	ButtonDefault = "Send Message"
	ButtonSending = "Sending..."
	ButtonSent    = "Message Sent! ✓"
	ButtonFailed  = "Error - Try Again"

	NoticeDismiss = 5 * time.Second
	ButtonReset   = 3 * time.Second
)

// Notice is a transient message shown to the user.
type Notice struct {
	Kind    NoticeKind
	Message string
	Dismiss time.Duration
}

// Result describes what the page should show after a submit.
type Result struct {
	ID     string // submission id, empty when nothing was sent
	Notice Notice
	Errors FieldErrors // per-field messages when the form was invalid
	Sent   bool
	Err    error // delivery failure, for logging only

	// ButtonText replaces the submit label until ResetAfter has passed,
	// then the label returns to ButtonDefault and the button is enabled.
	ButtonText string
	ResetAfter time.Duration
}

// Submit validates f and hands it to s. On success the form is reset; on
// any failure it is kept so the user can retry. Submit never panics on a
// sender error; the failure is reported through the Result.
func Submit(ctx context.Context, s Sender, f *Form, to string) Result {
	if errs := Validate(*f); errs != nil {
		return Result{
			Notice:     Notice{Kind: NoticeError, Message: NoticeInvalid, Dismiss: NoticeDismiss},
			Errors:     errs,
			ButtonText: ButtonDefault,
		}
	}

	id := uuid.NewString()
	if err := send(ctx, s, NewPayload(*f, to)); err != nil {
		return Result{
			ID:         id,
			Notice:     Notice{Kind: NoticeError, Message: NoticeFailed, Dismiss: NoticeDismiss},
			Err:        err,
			ButtonText: ButtonFailed,
			ResetAfter: ButtonReset,
		}
	}

	f.Reset()
	return Result{
		ID:         id,
		Notice:     Notice{Kind: NoticeSuccess, Message: NoticeSent, Dismiss: NoticeDismiss},
		Sent:       true,
		ButtonText: ButtonSent,
		ResetAfter: ButtonReset,
	}
}

func send(ctx context.Context, s Sender, p Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panicked: %v", r)
		}
	}()
	return s.Send(ctx, p)
}
