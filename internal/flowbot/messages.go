package flowbot

import "github.com/naseer2426/command-bots/internal/telegram"

const (
	msgHelp = "Available commands:\n" +
		"/start - Start the bot\n" +
		"/help - Get help\n" +
		"/info - Get information\n" +
		"/create - Create something new\n" +
		"/add name|email - Add a contact\n" +
		"/add_node label|name|type - Add a guide tree node\n" +
		"/append_node label|name|type - Append a guide tree node\n" +
		"Send \"menu\" for a command keyboard."
	msgInfo       = "Information about the bot"
	msgCreate     = "Item created. What would you like to do next?"
	msgMenu       = "Choose a command:"
	msgUseCommand = "Please use a command starting with /"

	msgAddFormat = "Vui lòng nhập đúng định dạng." + "\n\n" + "Ví dụ:\n```\n/add name|email\n```"
	msgSuccess   = "✅ Đã thêm thành công."
	msgFailure   = "Không thể thêm. Vui lòng thử lại sau!"
	msgError     = "Đã có lỗi xảy ra. Vui lòng thử lại sau!"
)

const (
	ActionAddNew = "add_new"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var callbackReplies = map[string]string{
	ActionAddNew: "You chose to add a new item.",
	ActionUpdate: "You chose to update the item.",
	ActionDelete: "You chose to delete the item.",
}

var botCommands = []telegram.BotCommand{
	{Command: "start", Description: "Start the bot"},
	{Command: "help", Description: "Get help"},
	{Command: "info", Description: "Get information"},
	{Command: "create", Description: "Create something new"},
}

func createKeyboard() telegram.InlineKeyboardMarkup {
	return telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: "Add New", CallbackData: ActionAddNew},
			{Text: "Update", CallbackData: ActionUpdate},
			{Text: "Delete", CallbackData: ActionDelete},
		}},
	}
}

func menuKeyboard() telegram.ReplyKeyboardMarkup {
	return telegram.ReplyKeyboardMarkup{
		Keyboard: [][]telegram.KeyboardButton{
			{{Text: "/create"}, {Text: "/help"}},
			{{Text: "/start"}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
