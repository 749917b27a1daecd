package entity

// Notification is the rendered message ready for delivery: a subject line plus
// plain-text and HTML alternatives carrying identical data.
type Notification struct {
	Subject  string
	TextBody string
	HTMLBody string
}
