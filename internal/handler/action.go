package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ActionKind discriminates inline-button actions.
type ActionKind string

const (
	ActionAddWishlist      ActionKind = "addwishlist"
	ActionSubscribeNews    ActionKind = "subscribe_news"
	ActionUnsubscribeNews  ActionKind = "unsubscribe_news"
	ActionConvertCurrency  ActionKind = "convert"
	ActionSubscribeSales   ActionKind = "subscribe_sales"
	ActionUnsubscribeSales ActionKind = "unsubscribe_sales"
	ActionNoop             ActionKind = "noop"
)

var errUnknownAction = errors.New("unknown callback action")

// Action is a decoded inline-button payload. AppID and Currency are only
// meaningful for the kinds that carry them; Currency is kept upper-case
// ("UA"/"US") and lower-cased on the wire.
type Action struct {
	Kind     ActionKind
	AppID    int
	Currency string
}

// Encode renders the wire form carried in callback data.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionAddWishlist, ActionConvertCurrency:
		return fmt.Sprintf("%s:%d:%s", a.Kind, a.AppID, strings.ToLower(a.Currency))
	case ActionSubscribeNews, ActionUnsubscribeNews:
		return fmt.Sprintf("%s:%d", a.Kind, a.AppID)
	default:
		return string(a.Kind)
	}
}

// DecodeAction parses callback data back into an Action. Unknown or
// malformed data yields errUnknownAction; the dispatcher ignores those.
func DecodeAction(data string) (Action, error) {
	parts := strings.Split(strings.TrimSpace(data), ":")
	kind := ActionKind(parts[0])

	switch kind {
	case ActionAddWishlist, ActionConvertCurrency:
		if len(parts) != 3 {
			return Action{}, errUnknownAction
		}
		appID, err := strconv.Atoi(parts[1])
		if err != nil || appID <= 0 {
			return Action{}, errUnknownAction
		}
		return Action{Kind: kind, AppID: appID, Currency: strings.ToUpper(parts[2])}, nil

	case ActionSubscribeNews, ActionUnsubscribeNews:
		if len(parts) != 2 {
			return Action{}, errUnknownAction
		}
		appID, err := strconv.Atoi(parts[1])
		if err != nil || appID <= 0 {
			return Action{}, errUnknownAction
		}
		return Action{Kind: kind, AppID: appID}, nil

	case ActionSubscribeSales, ActionUnsubscribeSales, ActionNoop:
		if len(parts) != 1 {
			return Action{}, errUnknownAction
		}
		return Action{Kind: kind}, nil
	}

	return Action{}, errUnknownAction
}
