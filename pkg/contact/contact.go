// Package contact stores messages sent through the portfolio contact form.
//
// A [Service] validates a [Submission], assigns it an ID and writes it to a
// [Store]. The store sets the timestamp and every message starts unread:
//
//	store, err := contact.Open(ctx, cfg.Contact)
//	if err != nil {
//	    return err
//	}
//	defer store.Close(ctx)
//
//	msg, err := contact.NewService(store).Submit(ctx, contact.Submission{
//	    Name:    "Ada",
//	    Email:   "ada@example.com",
//	    Message: "Hello!",
//	})
//
// Backends:
//   - memory: process-local, for tests and `showcase serve` without a database
//   - sqlite: a single file, for local deployments
//   - mongo: a MongoDB collection, for hosted deployments
package contact

import (
	"context"
	stderrors "errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/matzehuels/showcase/pkg/errors"
	"github.com/matzehuels/showcase/pkg/observability"
)

// ErrNotFound is returned by Store.Get for unknown IDs.
var ErrNotFound = stderrors.New("message not found")

// Submission is the contact form input.
type Submission struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Message is a stored submission.
type Message struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Read      bool      `json:"read" bson:"read"`
}

// Store is the interface for message storage backends.
type Store interface {
	// Insert writes a new unread message. The store assigns the timestamp
	// and returns the message as written.
	Insert(ctx context.Context, m Message) (*Message, error)

	// Get retrieves a message by ID, or returns ErrNotFound.
	Get(ctx context.Context, id string) (*Message, error)

	// Name identifies the backend in logs.
	Name() string

	// Close releases the backend's connections.
	Close(ctx context.Context) error
}

// Service accepts contact form submissions.
type Service struct {
	store    Store
	validate *validator.Validate
	newID    func() string
}

// NewService creates a service writing to store.
func NewService(store Store) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return &Service{store: store, validate: v, newID: uuid.NewString}
}

// Submit validates s and stores it as a new unread message.
//
// Invalid input returns an INVALID_INPUT error; use [Fields] for per-field
// messages. A backend that cannot be reached returns STORE_UNAVAILABLE;
// any other write failure returns SUBMISSION_FAILED.
func (svc *Service) Submit(ctx context.Context, s Submission) (*Message, error) {
	s = s.normalize()
	if err := svc.Validate(s); err != nil {
		return nil, err
	}

	start := time.Now()
	msg, err := svc.store.Insert(ctx, Message{
		ID:      svc.newID(),
		Name:    s.Name,
		Email:   s.Email,
		Message: s.Message,
	})
	if err != nil && !errors.Is(err, errors.ErrCodeStoreUnavailable) {
		err = errors.Wrap(errors.ErrCodeSubmissionFailed, err, "could not send message")
	}
	observability.Contact().OnSubmit(ctx, svc.store.Name(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Validate checks s without storing it.
func (svc *Service) Validate(s Submission) error {
	err := svc.validate.Struct(s.normalize())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate submission")
	}
	fields := describe(verrs)
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fields[fe.Field()])
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, &FieldErrors{Fields: fields}, "%s", strings.Join(msgs, "; "))
}

func (s Submission) normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// FieldErrors maps form fields to validation messages.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "invalid submission"
}

// Fields returns the per-field validation messages carried by err, or nil.
func Fields(err error) map[string]string {
	var fe *FieldErrors
	if stderrors.As(err, &fe) {
		return fe.Fields
	}
	return nil
}

func describe(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "max":
			out[field] = field + " must be at most " + fe.Param() + " characters"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
