package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRequiredFields = errors.New("Please fill in all required fields")
	ErrInvalidEmail   = errors.New("Please enter a valid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Form is the contact page submission.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrRequiredFields
	}
	if !ValidEmail(strings.TrimSpace(f.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// Signup is the notify-me form on coming-soon pages.
type Signup struct {
	Email   string `json:"email"`
	Product string `json:"product,omitempty"`
}

func (s Signup) Validate() error {
	if strings.TrimSpace(s.Email) == "" {
		return ErrRequiredFields
	}
	if !ValidEmail(strings.TrimSpace(s.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Service accepts form submissions. Delivery is simulated: after the
// configured delay the lead is logged and acknowledged.
type Service struct {
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewService(delay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{delay: delay, logger: logger, now: time.Now}
}

// Submit validates f and waits out the simulated delivery. A cancelled
// context abandons the submission.
func (s *Service) Submit(ctx context.Context, f Form) (Receipt, error) {
	if err := f.Validate(); err != nil {
		return Receipt{}, err
	}
	if err := s.wait(ctx); err != nil {
		return Receipt{}, err
	}

	r := Receipt{ID: uuid.NewString(), ReceivedAt: s.now()}
	s.logger.Info("contact form received",
		zap.String("id", r.ID),
		zap.String("email", f.Email),
		zap.String("subject", f.Subject),
		zap.Int("message_len", len(f.Message)),
	)
	return r, nil
}

func (s *Service) Subscribe(ctx context.Context, su Signup) (Receipt, error) {
	if err := su.Validate(); err != nil {
		return Receipt{}, err
	}
	if err := s.wait(ctx); err != nil {
		return Receipt{}, err
	}

	r := Receipt{ID: uuid.NewString(), ReceivedAt: s.now()}
	s.logger.Info("signup received",
		zap.String("id", r.ID),
		zap.String("email", su.Email),
		zap.String("product", su.Product),
	)
	return r, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
