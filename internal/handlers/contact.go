// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"intraasia/internal/mail"
)

// ContactConfig holds the delivery settings for the contact form. The
// recipient list and sender identity come from operator configuration;
// when either is missing the handler degrades to a validation-style
// failure instead of crashing.
type ContactConfig struct {
	Recipients []string
	Sender     string
}

// Contact handles contact form submissions: honeypot check, validation,
// and a single delivery attempt through the mail collaborator.
type Contact struct {
	mailer mail.Sender
	config ContactConfig
}

// NewContact creates a new Contact handler group. mailer may be nil when
// delivery is not configured.
func NewContact(mailer mail.Sender, config ContactConfig) *Contact {
	return &Contact{mailer: mailer, config: config}
}

// contactResponse is the JSON shape returned for every submission outcome.
type contactResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

const (
	contactThanks      = "Thank you for contacting us! We will be in touch with you soon!"
	contactUnavailable = "We could not send your message right now. Please try again later."
)

// Submit processes one form-encoded submission. Status codes: 200 for
// delivered (or honeypot-absorbed) submissions, 400 for validation
// failures, 500 when the delivery provider rejects the message.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{
			Success: false,
			Errors:  []string{"Invalid form submission."},
		})
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	message := r.PostFormValue("message")
	botField := r.PostFormValue("bot-field")

	// Honeypot: a filled hidden field means automation. Respond exactly
	// like a successful submission so the bot learns nothing, but skip
	// delivery entirely.
	if botField != "" {
		slog.Warn("contact honeypot triggered", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: contactThanks})
		return
	}

	if errs := validateSubmission(name, email, message); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, contactResponse{Success: false, Errors: errs})
		return
	}

	// Missing delivery configuration is an operator problem, logged as
	// such, but the visitor just sees a generic failure.
	if h.mailer == nil || len(h.config.Recipients) == 0 || h.config.Sender == "" {
		slog.Error("contact delivery not configured",
			"recipients", len(h.config.Recipients),
			"sender_set", h.config.Sender != "",
		)
		writeJSON(w, http.StatusBadRequest, contactResponse{
			Success: false,
			Errors:  []string{contactUnavailable},
		})
		return
	}

	msg := mail.Message{
		From:    h.config.Sender,
		To:      h.config.Recipients,
		Subject: fmt.Sprintf("Website enquiry from %s", strings.TrimSpace(name)),
		ReplyTo: email,
		HTML:    renderBody(name, email, message),
	}

	// One attempt only — a failed submission is reported back and the
	// visitor decides whether to resubmit.
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		slog.Error("contact delivery failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{
			Success: false,
			Message: contactUnavailable,
		})
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: contactThanks})
}

// renderBody renders the submission as an HTML email body. All fields are
// escaped; message newlines become line breaks.
func renderBody(name, email, message string) string {
	body := html.EscapeString(message)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "<br>")

	return fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(email), body,
	)
}
