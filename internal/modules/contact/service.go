package contact

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/validator"
)

type Service struct {
	contacts ContactRepository
	sink     EventSink
}

func NewService(contacts ContactRepository, sink EventSink) *Service {
	return &Service{contacts: contacts, sink: sink}
}

// Submit stores a public contact-form message and notifies the back office.
func (s *Service) Submit(ctx context.Context, req SubmitContactRequest) (*domain.Contact, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	c := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.sink != nil {
		s.sink.ContactReceived(c)
	}
	return c, nil
}

// List returns messages filtered by read state. An empty or "all" filter
// returns everything.
func (s *Service) List(ctx context.Context, filter string) ([]domain.Contact, error) {
	switch filter {
	case "", "all":
		return s.contacts.List(ctx)
	case "unread":
		return s.contacts.ListUnread(ctx)
	case "read":
		all, err := s.contacts.List(ctx)
		if err != nil {
			return nil, err
		}
		read := make([]domain.Contact, 0, len(all))
		for _, c := range all {
			if c.IsRead {
				read = append(read, c)
			}
		}
		return read, nil
	default:
		return nil, ErrValidation
	}
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	err := s.contacts.MarkRead(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// MarkAllRead marks every unread message one by one and reports how many
// were flipped before the first failure.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := s.contacts.ListUnread(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, c := range unread {
		if err := s.contacts.MarkRead(ctx, c.ID); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}
