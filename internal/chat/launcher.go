// Package chat builds the floating chat launcher's deep links.
package chat

import (
	"net/url"
	"strings"
)

// Launcher holds the messaging handles behind the floating chat button.
type Launcher struct {
	WhatsAppNumber string
	MessengerUser  string
	Greeting       string
}

// Channel is one messaging option shown when the launcher is open.
type Channel struct {
	Name string
	URL  string
}

// WhatsAppURL returns the wa.me link with the greeting prefilled.
func (l Launcher) WhatsAppURL() string {
	number := strings.TrimPrefix(strings.TrimSpace(l.WhatsAppNumber), "+")
	link := "https://wa.me/" + url.PathEscape(number)
	if l.Greeting != "" {
		link += "?text=" + url.QueryEscape(l.Greeting)
	}
	return link
}

// MessengerURL returns the m.me link.
func (l Launcher) MessengerURL() string {
	return "https://m.me/" + url.PathEscape(l.MessengerUser)
}

// Channels lists the configured messaging options, skipping any whose
// handle is empty.
func (l Launcher) Channels() []Channel {
	var channels []Channel
	if l.WhatsAppNumber != "" {
		channels = append(channels, Channel{Name: "WhatsApp", URL: l.WhatsAppURL()})
	}
	if l.MessengerUser != "" {
		channels = append(channels, Channel{Name: "Messenger", URL: l.MessengerURL()})
	}
	return channels
}

// Toggle flips the launcher between open and closed.
func Toggle(open bool) bool {
	return !open
}
