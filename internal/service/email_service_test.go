package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/models"
)

func TestBuildContactNotificationContent(t *testing.T) {
	submission := &models.ContactSubmission{
		ID:      3,
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Projet IA",
		Message: "Bonjour, parlons de notre projet.",
		Date:    time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
	}
	tests := []struct {
		name                string
		locale              string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:                "fr",
			locale:              i18n.LocaleFR,
			wantSubjectContains: []string{"Nouveau message de contact", "Projet IA"},
			wantBodyContains:    []string{"Nom : Ana", "E-mail : ana@example.com", "2024-02-01T09:30:00Z", "parlons de notre projet"},
		},
		{
			name:                "en",
			locale:              "en-US",
			wantSubjectContains: []string{"New contact message: Projet IA"},
			wantBodyContains:    []string{"Name: Ana", "Subject: Projet IA"},
		},
		{
			name:                "unknown_locale_falls_back_to_fr",
			locale:              "de",
			wantSubjectContains: []string{"Nouveau message de contact"},
			wantBodyContains:    []string{"Sujet : Projet IA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := buildContactNotificationContent(submission, tt.locale)
			for _, want := range tt.wantSubjectContains {
				if !strings.Contains(subject, want) {
					t.Fatalf("subject %q does not contain %q", subject, want)
				}
			}
			for _, want := range tt.wantBodyContains {
				if !strings.Contains(body, want) {
					t.Fatalf("body %q does not contain %q", body, want)
				}
			}
		})
	}
}

func TestSendContactNotificationGuards(t *testing.T) {
	submission := &models.ContactSubmission{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello"}

	disabled := NewEmailService(&config.EmailConfig{Enabled: false, NotifyTo: "owner@example.com"})
	if err := disabled.SendContactNotification(submission, "fr"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}

	noRecipient := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 25, From: "site@example.com"})
	if err := noRecipient.SendContactNotification(submission, "fr"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}

	missingHost := NewEmailService(&config.EmailConfig{Enabled: true, From: "site@example.com", NotifyTo: "owner@example.com"})
	if err := missingHost.SendContactNotification(submission, "fr"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}

	badRecipient := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 25, From: "site@example.com", NotifyTo: "not-an-email"})
	if err := badRecipient.SendContactNotification(submission, "fr"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}

func TestEmailMessageHeaders(t *testing.T) {
	raw := string(emailMessage{
		From:    formatAddress("site@example.com", "Consult IA"),
		To:      "owner@example.com",
		ReplyTo: "ana@example.com",
		Subject: "Nouveau message : Présentation",
		Body:    "Bonjour",
	}.Bytes())

	for _, want := range []string{
		"From: \"Consult IA\" <site@example.com>\r\n",
		"To: owner@example.com\r\n",
		"Reply-To: ana@example.com\r\n",
		"Subject: =?UTF-8?q?",
		"Content-Type: text/plain; charset=UTF-8\r\n\r\nBonjour",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message %q does not contain %q", raw, want)
		}
	}
	if strings.Contains(string(emailMessage{To: "a@example.com"}.Bytes()), "Reply-To") {
		t.Fatalf("empty reply-to should be omitted")
	}
}
