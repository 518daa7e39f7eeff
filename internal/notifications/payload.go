package notifications

import (
	"encoding/json"
	"strings"
)

const (
	defaultTitle = "Notification"
	defaultURL   = "/"
)

// Notification is what a push message is shown as.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// PushPayload decodes a push message. A body that is not JSON becomes the text
// of a default titled notification.
func PushPayload(data []byte) Notification {
	var n Notification
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n); err != nil {
			n = Notification{Body: string(data)}
		}
	}
	if n.Title == "" {
		n.Title = defaultTitle
	}
	if n.URL == "" {
		n.URL = defaultURL
	}
	return n
}

type ClickAction struct {
	URL   string `json:"url"`
	Focus bool   `json:"focus"`
}

// ClickTarget focuses an open window already showing the notification's url and
// opens a new one otherwise.
func ClickTarget(n Notification, openWindows []string) ClickAction {
	url := strings.TrimSpace(n.URL)
	if url == "" {
		url = defaultURL
	}
	for _, w := range openWindows {
		if w == url {
			return ClickAction{URL: url, Focus: true}
		}
	}
	return ClickAction{URL: url}
}
