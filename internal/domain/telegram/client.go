package telegram

import "gopkg.in/telebot.v3"

// Client is the notification sink the poller reports to.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
