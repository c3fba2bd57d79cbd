package signalwall

import (
	"fmt"
	"net/url"
	"strings"
)

// ContactSubject is the fixed subject of the contact form.
const ContactSubject = "Wire Contact"

// Comment is a submission of the comment form shown under a post.
type Comment struct {
	Name    string
	Country string
	Text    string
}

func (c Comment) empty() bool {
	return strings.TrimSpace(c.Name+c.Country+c.Text) == ""
}

// Body formats the comment for the mail body.
func (c Comment) Body() string {
	return fmt.Sprintf("From: %s (%s)\r\n\r\n\"%s\"", c.Name, c.Country, c.Text)
}

// MailComposer builds mailto: URIs addressed to one recipient.
type MailComposer struct {
	To string
}

// Comment composes the mail for a comment. An empty subject falls back to
// DefaultCommentSubject.
func (m MailComposer) Comment(c Comment, subject string) string {
	if subject == "" {
		subject = DefaultCommentSubject
	}
	return MailtoURI(m.To, subject, c.Body())
}

// Contact composes the mail for the contact form.
func (m MailComposer) Contact(message string) string {
	return MailtoURI(m.To, ContactSubject, message)
}

// MailtoURI builds a mailto: URI. Subject and body are percent-encoded with
// spaces as %20 and every line break as %0D%0A.
func MailtoURI(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + mailEscape(subject) + "&body=" + mailEscape(normalizeNewlines(body))
}

func mailEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
