package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// UI texts in English
const (
	startText = "🍵 Hi! I'm EcoHelper 🕊️, your personal eco assistant.\n\n" +
		"Here you can learn about global warming and what helps against it " +
		"(/globalwarming), and every day I'll send you one simple eco tip.\n\n" +
		"Ready to make the world a bit greener? Use /subscribe to pick your " +
		"daily tip time."
	chooseTZText      = "First, choose your timezone:"
	customTZPrompt    = "Enter your timezone as Region/City (e.g. Europe/Berlin):"
	invalidTZText     = "⛔ Unknown timezone. Enter an IANA name like Europe/Moscow."
	chooseTimeText    = "Now choose a time for your daily tip:"
	customTimePrompt  = "Enter the time as HH:MM (e.g. 09:30)"
	invalidTimeText   = "⛔ Invalid time. Enter it as HH:MM, hours 0-23 and minutes 0-59."
	subscribedFmt     = "✅ Great! I'll send you a tip every day at %s (%s)."
	stoppedText       = "Daily tips stopped. Come back any time with /subscribe."
	notSubscribedText = "You are not subscribed yet. Use /subscribe to pick a time."
	statusFmt         = "🧾 Daily tip at %s, timezone %s.\nNext delivery: %s."

	globalWarmingText = "🌍 Global warming is the rise of the average temperature " +
		"of Earth's climate system. Learn more: /what"
	whatText = "🔥 Consequences of climate change:\n" +
		"- Severe droughts and water shortages\n" +
		"- Rising sea levels\n" +
		"- Catastrophic weather events\n" +
		"- Loss of biodiversity\n" +
		"Causes: /why"
	whyText = "📈 Main causes of global warming:\n" +
		"1. Greenhouse gas emissions (CO2, methane)\n" +
		"2. Burning fossil fuels\n" +
		"3. Deforestation\n" +
		"4. Industrial processes\n" +
		"5. Landfills (they release methane)\n\n" +
		"💡 Everyone can help — start small with /subscribe"
)

// Inline keyboards

func tzPresetsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Moscow (UTC+3)", "tz:Europe/Moscow"),
			tgbotapi.NewInlineKeyboardButtonData("London (UTC+1)", "tz:Europe/London"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("New York (UTC-4)", "tz:America/New_York"),
			tgbotapi.NewInlineKeyboardButtonData("Tokyo (UTC+9)", "tz:Asia/Tokyo"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Other…", "tz:custom"),
		),
	)
}

func timePresetsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("08:00", "time:08:00"),
			tgbotapi.NewInlineKeyboardButtonData("12:00", "time:12:00"),
			tgbotapi.NewInlineKeyboardButtonData("18:00", "time:18:00"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Other time…", "time:custom"),
		),
	)
}
