package enrollment

import (
	"context"
	"errors"

	"klture/internal/auth"
	"klture/internal/catalog"
	"klture/internal/credit"
	"klture/internal/email"
	"klture/internal/logger"
	"klture/internal/metrics"
	"klture/internal/sales"
)

var (
	ErrInsufficientFunds   = errors.New("insufficient credit balance")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrPasswordRequired    = errors.New("password required when not signed in")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrAuthRequired        = errors.New("sign in required for paid programs")
	ErrPriceMapUnavailable = errors.New("program catalog unavailable")
)

type Service interface {
	Register(ctx context.Context, in RegisterInput, callerEmail string) (*Outcome, error)
	QuoteFor(ctx context.Context, program, callerEmail string) (*Quote, error)
	MyEnrollments(ctx context.Context, email string) ([]Registration, error)
}

type service struct {
	repo         Repository
	catalogRepo  catalog.Repository
	creditRepo   credit.Repository
	salesRepo    sales.Repository
	reader       *credit.Reader
	emailService *email.Service
}

func NewService(
	repo Repository,
	catalogRepo catalog.Repository,
	creditRepo credit.Repository,
	salesRepo sales.Repository,
	reader *credit.Reader,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		creditRepo:   creditRepo,
		salesRepo:    salesRepo,
		reader:       reader,
		emailService: emailService,
	}
}

// Register writes an enrollment. For priced programs the caller's balance
// is checked before anything is written; the registration insert is the
// only write that can fail the request. The spend entry and the sales row
// are written after it independently: a failure there is logged and counted
// for reconciliation, never surfaced, because the member already holds a
// confirmed registration at that point.
func (s *service) Register(ctx context.Context, in RegisterInput, callerEmail string) (*Outcome, error) {
	authenticated := callerEmail != ""
	if authenticated {
		// A signed-in member enrolls under their own identity.
		in.Email = callerEmail
	}

	prices, err := s.catalogRepo.PriceMap(ctx)
	if err != nil {
		logger.Errorf("failed to build price map: %v", err)
		return nil, ErrPriceMapUnavailable
	}

	quote := Evaluate(prices, in.Program, s.reader.Balance(ctx, callerEmail), authenticated)
	paid := quote.Price.IsPositive()

	if paid {
		if !authenticated {
			return nil, ErrAuthRequired
		}
		if !quote.HasSufficientFunds {
			return nil, ErrInsufficientFunds
		}
	}

	category := prices.Category(in.Program)

	// Free courses are tracked by bare title and are idempotent per member.
	// Priced programs may repeat: a member can buy the same program twice.
	if _, priced := prices.Lookup(in.Program); !priced && in.Program != "" {
		enrolled, err := s.repo.HasRegistration(ctx, in.Email, in.Program)
		if err != nil {
			return nil, err
		}
		if enrolled {
			return nil, ErrAlreadyEnrolled
		}
	}

	var passwordHash *string
	if !authenticated && in.Password == "" {
		// An anonymous registration doubles as the account row, so it must
		// carry credentials the guest can later sign in with.
		return nil, ErrPasswordRequired
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		hashed, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hashed
	}

	reg, err := s.repo.Insert(ctx, in, passwordHash)
	if err != nil {
		metrics.RecordRegistration(string(category), "failed")
		return nil, err
	}

	outcome := &Outcome{
		Registration: reg,
		Category:     category,
		Price:        quote.Price,
		Paid:         paid,
	}

	if paid {
		note := "Enrollment: " + in.Program
		if _, err := s.creditRepo.Spend(ctx, in.Email, quote.Price, note); err != nil {
			logger.Errorf("spend entry failed for %s after registration %d: %v", in.Email, reg.ID, err)
			metrics.RecordLedgerWriteFailure("spend")
		} else {
			outcome.LedgerWritten = true
			metrics.RecordCreditSpend()
		}

		if _, err := s.salesRepo.Insert(ctx, in.Email, in.Program, string(category), quote.Price, "credit"); err != nil {
			logger.Errorf("sales record failed for %s after registration %d: %v", in.Email, reg.ID, err)
			metrics.RecordLedgerWriteFailure("sales")
		} else {
			outcome.SalesWritten = true
		}

		s.reader.Refresh(ctx, in.Email)
	}

	metrics.RecordRegistration(string(category), "success")

	if s.emailService != nil && in.Email != "" {
		program := in.Program
		if program == "" {
			program = "General Membership"
		}
		if err := s.emailService.SendEnrollmentConfirmation(ctx, in.Email, in.FullName, program); err != nil {
			logger.Errorf("failed to queue confirmation email to %s: %v", in.Email, err)
		}
	}

	return outcome, nil
}

// QuoteFor answers "can this caller afford this program" without writing
// anything. An empty caller email means anonymous.
func (s *service) QuoteFor(ctx context.Context, program, callerEmail string) (*Quote, error) {
	prices, err := s.catalogRepo.PriceMap(ctx)
	if err != nil {
		logger.Errorf("failed to build price map: %v", err)
		return nil, ErrPriceMapUnavailable
	}

	authenticated := callerEmail != ""
	quote := Evaluate(prices, program, s.reader.Balance(ctx, callerEmail), authenticated)
	return &quote, nil
}

func (s *service) MyEnrollments(ctx context.Context, email string) ([]Registration, error) {
	return s.repo.ListByEmail(ctx, email)
}
