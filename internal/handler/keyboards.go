package handler

import (
	"strings"

	"steambot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Menu button labels. They double as routing keys in the command table.
const (
	menuWishlist           = "📜 Список бажань"
	menuSearch             = "🔎 Пошук ігор"
	menuSubscriptions      = "📰 Підписка на новини"
	menuDiscounts          = "🔥 Щоденні знижки"
	menuSearchByName       = "🖊️ Пошук по назві"
	menuSearchByGenre      = "📚 Пошук по жанру"
	menuSearchByBudget     = "💰 Пошук по бюджету"
	menuRemoveFromWishlist = "❌ Видалити з вішліста"
	menuUnsubscribe        = "❌ Відписатися від новин"
	menuBack               = "⬅️ Назад"
)

func mainMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(menuWishlist)),
		menu.Row(menu.Text(menuSearch)),
		menu.Row(menu.Text(menuSubscriptions)),
		menu.Row(menu.Text(menuDiscounts)),
	)
	return menu
}

func searchMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(menuSearchByName)),
		menu.Row(menu.Text(menuSearchByGenre)),
		menu.Row(menu.Text(menuSearchByBudget)),
		menu.Row(menu.Text(menuBack)),
	)
	return menu
}

func wishlistMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(menuRemoveFromWishlist)),
		menu.Row(menu.Text(menuBack)),
	)
	return menu
}

func subscriptionMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(menuUnsubscribe)),
		menu.Row(menu.Text(menuBack)),
	)
	return menu
}

func removeKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// selectionKeyboard offers one candidate per row; the picked label carries
// the app id back through the game-selection state.
func selectionKeyboard(games []domain.GameSearchResult) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := make([]tele.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, menu.Row(menu.Text(g.SelectionLabel())))
	}
	menu.Reply(rows...)
	return menu
}

// detailsKeyboard renders the inline keyboard under a details caption.
// currency is the currently displayed one; subscribed is the chat's
// news-subscription set.
func detailsKeyboard(d *domain.GameDetails, currency string, subscribed []int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := []tele.Row{
		markup.Row(tele.Btn{Text: "🔗 Відкрити в Steam", URL: d.StoreURL}),
	}
	if d.TrailerURL != "" {
		rows = append(rows, markup.Row(tele.Btn{Text: "🎞 Переглянути трейлер", URL: d.TrailerURL}))
	}

	wishBtn := tele.Btn{
		Text: "➕ Вішліст",
		Data: Action{Kind: ActionAddWishlist, AppID: d.AppID, Currency: currency}.Encode(),
	}
	if d.InWishlist {
		wishBtn = tele.Btn{Text: "✅ У вішліст", Data: Action{Kind: ActionNoop}.Encode()}
	}
	rows = append(rows, markup.Row(wishBtn))

	newsBtn := tele.Btn{
		Text: "🔔 Підписатись на новини",
		Data: Action{Kind: ActionSubscribeNews, AppID: d.AppID}.Encode(),
	}
	for _, id := range subscribed {
		if id == d.AppID {
			newsBtn = tele.Btn{
				Text: "🔕 Відписатись від новин",
				Data: Action{Kind: ActionUnsubscribeNews, AppID: d.AppID}.Encode(),
			}
			break
		}
	}
	rows = append(rows, markup.Row(newsBtn))

	if d.ConvertiblePrice() {
		convBtn := tele.Btn{
			Text: "💲 Показати ціну в $",
			Data: Action{Kind: ActionConvertCurrency, AppID: d.AppID, Currency: "US"}.Encode(),
		}
		if strings.EqualFold(currency, "US") {
			convBtn = tele.Btn{
				Text: "💴 Показати в грн",
				Data: Action{Kind: ActionConvertCurrency, AppID: d.AppID, Currency: "UA"}.Encode(),
			}
		}
		rows = append(rows, markup.Row(convBtn))
	}

	markup.Inline(rows...)
	return markup
}

// salesToggleKeyboard renders the subscribe/unsubscribe-sales button shown
// under the discounts listing.
func salesToggleKeyboard(subscribed bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	btn := tele.Btn{
		Text: "🔔 Підписатися на знижки",
		Data: Action{Kind: ActionSubscribeSales}.Encode(),
	}
	if subscribed {
		btn = tele.Btn{
			Text: "🔕 Відписатися від знижок",
			Data: Action{Kind: ActionUnsubscribeSales}.Encode(),
		}
	}
	markup.Inline(markup.Row(btn))
	return markup
}
