package bot

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Command is a recognized token following the command prefix.
type Command string

const (
	CommandStart Command = "start"
	CommandHello Command = "hello"
	CommandHelp  Command = "help"
	CommandMabar Command = "mabar"
	CommandAbout Command = "about"
	CommandAIBot Command = "aibot"
)

// CommandPrefix marks a message as a command.
const CommandPrefix = "/"

// Commands lists every command in the order shown to users.
var Commands = []Command{
	CommandStart,
	CommandHello,
	CommandHelp,
	CommandAbout,
	CommandMabar,
	CommandAIBot,
}

var descriptions = map[Command]string{
	CommandStart: "Mulai percakapan dengan bot.",
	CommandHello: "Sapa bot dan lihat responsnya.",
	CommandHelp:  "Lihat panduan ini.",
	CommandAbout: "Info tentang bot.",
	CommandMabar: "Mengajak bermain game (ML, FF, E-Football).",
	CommandAIBot: "Tanyakan saya sesuatu dan saya akan menjawabnya dengan AI.",
}

// ParseCommand extracts the command token from text. It reports false when
// text does not start with CommandPrefix. A "@botname" suffix is dropped, so
// "/help@ucup_bot now" yields "help". The token is returned even when it is
// not one of Commands.
func ParseCommand(text string) (Command, bool) {
	if !strings.HasPrefix(text, CommandPrefix) {
		return "", false
	}

	token := strings.Fields(text)[0][len(CommandPrefix):]
	if at := strings.IndexByte(token, '@'); at >= 0 {
		token = token[:at]
	}

	return Command(token), true
}

// BotCommands describes Commands for Telegram's command menu.
func BotCommands() []models.BotCommand {
	out := make([]models.BotCommand, 0, len(Commands))
	for _, c := range Commands {
		out = append(out, models.BotCommand{
			Command:     string(c),
			Description: descriptions[c],
		})
	}
	return out
}
