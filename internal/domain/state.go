package domain

// UserState tags the input the next free-text message is expected to carry.
type UserState string

const (
	StateIdle                  UserState = "idle"
	StateAwaitingName          UserState = "awaiting_name"
	StateAwaitingGenre         UserState = "awaiting_genre"
	StateAwaitingBudget        UserState = "awaiting_budget"
	StateAwaitingRemoveID      UserState = "awaiting_remove_id"
	StateAwaitingUnsubscribeID UserState = "awaiting_unsubscribe_id"
	StateAwaitingGameSelection UserState = "awaiting_game_selection"
)

// StateData holds a chat's conversation state. RetractMessageID remembers the
// results-keyboard message shown on entering game selection; nothing deletes
// that message yet, the id is only carried until the state is consumed.
type StateData struct {
	State            UserState
	RetractMessageID int
}
