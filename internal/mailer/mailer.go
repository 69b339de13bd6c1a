package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // optional: "Nivaaran"
	From     string // required: "no-reply@nivaaran.local"

	To      []string
	ReplyTo string // optional: lets contact replies go to the visitor

	Subject string

	TextBody string
	HTMLBody string
}
