package model

import (
	"bytes"
	"html/template"

	"campusvisit/infras/backend"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in messages is never passed through: WithUnsafe is not set.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type Item struct {
	backend.Notification
	Body template.HTML
}

type Inbox struct {
	New  []Item
	Read []Item
}

func (i Inbox) Unread() int {
	return len(i.New)
}

// Render converts a message to HTML, falling back to escaped text.
func Render(message string) template.HTML {
	var buf bytes.Buffer

	if err := markdown.Convert([]byte(message), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(message)) //nolint:gosec
	}

	return template.HTML(buf.String()) //nolint:gosec
}

// Split separates unread from read notifications, keeping the backend order in each.
func Split(notifications []backend.Notification) Inbox {
	inbox := Inbox{New: []Item{}, Read: []Item{}}

	for _, notification := range notifications {
		item := Item{Notification: notification, Body: Render(notification.Message)}

		if notification.IsRead {
			inbox.Read = append(inbox.Read, item)
		} else {
			inbox.New = append(inbox.New, item)
		}
	}

	return inbox
}

// MarkRead moves one notification to the read list and reports whether it was unread.
func (i *Inbox) MarkRead(id int64) bool {
	for index, item := range i.New {
		if item.ID == id {
			item.IsRead = true
			i.New = append(i.New[:index], i.New[index+1:]...)
			i.Read = append([]Item{item}, i.Read...)

			return true
		}
	}

	return false
}
