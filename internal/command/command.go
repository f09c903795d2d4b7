// Package command turns raw chat text into a tagged command value that the
// bots switch on.
package command

import (
	"strings"

	"github.com/naseer2426/command-bots/internal/telegram"
)

type Kind int

const (
	// KindNone is plain text that is not a command.
	KindNone Kind = iota
	KindMenu
	KindStart
	KindHelp
	KindInfo
	KindCreate
	KindAdd
	KindAddNode
	KindAppendNode
	KindAddBill
	KindUnknown
)

var names = map[string]Kind{
	"/start":       KindStart,
	"/help":        KindHelp,
	"/info":        KindInfo,
	"/create":      KindCreate,
	"/add":         KindAdd,
	"/add_node":    KindAddNode,
	"/append_node": KindAppendNode,
	"/a":           KindAddBill,
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMenu:
		return "menu"
	case KindUnknown:
		return "unknown"
	}
	for name, kind := range names {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

type Command struct {
	Kind Kind
	// Name is the command token without the @botname suffix, e.g. "/add".
	Name string
	Args string
}

// Parse classifies text. Only the first token decides the command, so
// "/add_node x" never matches "/add".
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "menu") {
		return Command{Kind: KindMenu}
	}
	if !strings.HasPrefix(text, "/") {
		return Command{Kind: KindNone, Args: text}
	}

	name, args := text, ""
	if i := strings.IndexAny(text, " \t\n"); i >= 0 {
		name, args = text[:i], strings.TrimSpace(text[i+1:])
	}
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	name = strings.ToLower(name)

	kind, ok := names[name]
	if !ok {
		kind = KindUnknown
	}
	return Command{Kind: kind, Name: name, Args: args}
}

// Message is a decoded incoming chat message.
type Message struct {
	ChatID   int64
	UserID   int64
	UserName string
	Text     string
}

func FromTelegram(m *telegram.Message) Message {
	msg := Message{
		ChatID: m.Chat.ID,
		Text:   m.Text,
	}
	if m.From != nil {
		msg.UserID = m.From.ID
		msg.UserName = m.From.Username
		if msg.UserName == "" {
			msg.UserName = m.From.FirstName
		}
	}
	return msg
}
