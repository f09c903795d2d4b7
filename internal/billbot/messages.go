package billbot

import (
	"fmt"

	"github.com/naseer2426/command-bots/internal/telegram"
)

const (
	msgUsage        = "Record a bill with:\n/a <bill name> <price>\n\nExample:\n/a dinner 180"
	msgInvalidPrice = "The price must be a positive number.\n\nExample:\n/a dinner 180"
	msgSaveFailed   = "❌ Could not save the bill. Please try again later!"
	msgUseCommand   = "Please use a command starting with /"
)

var botCommands = []telegram.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "help", Description: "How to record a bill"},
	{Command: "a", Description: "Add a bill: /a <name> <price>"},
}

func greeting(userName string) string {
	return fmt.Sprintf("Hello %s! I keep track of your bills.\n\n%s", userName, msgUsage)
}

func savedMessage(name string, price float64) string {
	return fmt.Sprintf("✅ Saved %s: %s", name, formatPrice(price))
}
