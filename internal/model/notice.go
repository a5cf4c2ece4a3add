package model

import "github.com/google/uuid"

// NoticeKind classifies a user-visible notice
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeDenied  NoticeKind = "denied"
)

// Notice is a blocking message shown to the user (alert dialog on screen)
type Notice struct {
	ID      string
	Kind    NoticeKind
	Title   string
	Message string
}

// NewNotice creates a notice with a unique ID
func NewNotice(kind NoticeKind, title, message string) Notice {
	return Notice{
		ID:      "notice-" + uuid.New().String(),
		Kind:    kind,
		Title:   title,
		Message: message,
	}
}

// IsError returns true for notices that report a failure or a denial
func (n Notice) IsError() bool {
	return n.Kind == NoticeError || n.Kind == NoticeDenied
}
