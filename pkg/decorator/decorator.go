// Package decorator implements the decorator pattern: a base notifier
// wrapped by channel decorators, each adding its own delivery on top of
// whatever it wraps.
package decorator

import "fmt"

// Notifier delivers a message and reports every delivery made.
type Notifier interface {
	// Send delivers the message and returns one entry per channel used,
	// innermost first.
	Send(message string) []string
}

// EmailNotifier is the concrete component every stack is built on.
type EmailNotifier struct {
	To string
}

// NewEmailNotifier creates the base notifier.
func NewEmailNotifier(to string) *EmailNotifier {
	return &EmailNotifier{To: to}
}

func (n *EmailNotifier) Send(message string) []string {
	return []string{fmt.Sprintf("email to %s: %s", n.To, message)}
}

// SMSDecorator adds SMS delivery on top of the wrapped notifier.
type SMSDecorator struct {
	wrapped Notifier
	Number  string
}

// NewSMSDecorator wraps a notifier with SMS delivery.
func NewSMSDecorator(wrapped Notifier, number string) *SMSDecorator {
	return &SMSDecorator{wrapped: wrapped, Number: number}
}

func (d *SMSDecorator) Send(message string) []string {
	return append(d.wrapped.Send(message), fmt.Sprintf("sms to %s: %s", d.Number, message))
}

// SlackDecorator adds slack delivery on top of the wrapped notifier.
type SlackDecorator struct {
	wrapped Notifier
	Channel string
}

// NewSlackDecorator wraps a notifier with slack delivery.
func NewSlackDecorator(wrapped Notifier, channel string) *SlackDecorator {
	return &SlackDecorator{wrapped: wrapped, Channel: channel}
}

func (d *SlackDecorator) Send(message string) []string {
	return append(d.wrapped.Send(message), fmt.Sprintf("slack %s: %s", d.Channel, message))
}

// FacebookDecorator adds facebook delivery on top of the wrapped notifier.
type FacebookDecorator struct {
	wrapped Notifier
	User    string
}

// NewFacebookDecorator wraps a notifier with facebook delivery.
func NewFacebookDecorator(wrapped Notifier, user string) *FacebookDecorator {
	return &FacebookDecorator{wrapped: wrapped, User: user}
}

func (d *FacebookDecorator) Send(message string) []string {
	return append(d.wrapped.Send(message), fmt.Sprintf("facebook %s: %s", d.User, message))
}
