package contact

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Nikk-inovates/Nivaaran/internal/config"
	"github.com/Nikk-inovates/Nivaaran/internal/mailer"
)

// Submission is the contact form payload. Nothing is persisted; a valid
// submission becomes exactly one outbound email.
type Submission struct {
	Name    string `form:"name" validate:"required,min=2,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required,min=10,max=4000"`
}

type FieldErrors map[string]string

type Service struct {
	mail     mailer.Service
	validate *validator.Validate

	to       string
	from     string
	fromName string
}

func NewService(mail mailer.Service, cfg *config.Config) *Service {
	to := cfg.ContactTo
	if to == "" {
		to = cfg.SMTP.From
	}
	return &Service{
		mail:     mail,
		validate: validator.New(),
		to:       to,
		from:     cfg.SMTP.From,
		fromName: cfg.SMTP.FromName,
	}
}

// Submit validates and forwards the message. A non-nil FieldErrors means
// the form should re-render inline; a non-nil error means delivery failed.
func (s *Service) Submit(ctx context.Context, sub Submission) (FieldErrors, error) {
	if err := s.validate.Struct(sub); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return fieldErrors(ve), nil
		}
		return FieldErrors{"_": "Form data is invalid."}, nil
	}

	e := mailer.Email{
		FromName: s.fromName,
		From:     s.from,
		To:       []string{s.to},
		ReplyTo:  sub.Email,
		Subject:  fmt.Sprintf("Contact form: %s", sub.Name),
		TextBody: fmt.Sprintf("From: %s <%s>\n\n%s\n", sub.Name, sub.Email, sub.Message),
	}
	if err := s.mail.Send(ctx, e); err != nil {
		return nil, fmt.Errorf("contact: send failed: %w", err)
	}
	return nil, nil
}

func fieldErrors(ve validator.ValidationErrors) FieldErrors {
	out := FieldErrors{}
	for _, fe := range ve {
		switch fe.Field() {
		case "Name":
			out["name"] = messageForTag(fe.Tag(), fe.Param())
		case "Email":
			out["email"] = messageForTag(fe.Tag(), fe.Param())
		case "Message":
			out["message"] = messageForTag(fe.Tag(), fe.Param())
		}
	}
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	default:
		return "Invalid value."
	}
}
