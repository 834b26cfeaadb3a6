package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// Outbound records one Send or Edit issued by a handler.
type Outbound struct {
	Text   string
	Markup *tele.ReplyMarkup
}

// FakeContext implements the slice of tele.Context that handlers touch and
// records outbound traffic. Any method a handler unexpectedly calls panics
// through the embedded nil interface, which is exactly what a test wants.
type FakeContext struct {
	tele.Context

	ChatValue     *tele.Chat
	SenderValue   *tele.User
	TextValue     string
	CallbackValue *tele.Callback

	SentMessages  []Outbound
	EditedTargets []Outbound
	Answers       []*tele.CallbackResponse
}

// NewFakeContext creates a fake context for a plain text message.
func NewFakeContext(chatID int64, text string) *FakeContext {
	return &FakeContext{
		ChatValue:   &tele.Chat{ID: chatID},
		SenderValue: &tele.User{ID: chatID},
		TextValue:   text,
	}
}

// NewFakeCallbackContext creates a fake context for a button press.
func NewFakeCallbackContext(chatID int64, data string) *FakeContext {
	fc := NewFakeContext(chatID, "")
	fc.CallbackValue = &tele.Callback{
		Data:    data,
		Message: &tele.Message{ID: 1, Chat: fc.ChatValue},
	}
	return fc
}

func (f *FakeContext) Chat() *tele.Chat         { return f.ChatValue }
func (f *FakeContext) Sender() *tele.User       { return f.SenderValue }
func (f *FakeContext) Text() string             { return f.TextValue }
func (f *FakeContext) Callback() *tele.Callback { return f.CallbackValue }

func (f *FakeContext) Message() *tele.Message {
	if f.CallbackValue != nil {
		return f.CallbackValue.Message
	}
	return &tele.Message{Chat: f.ChatValue, Text: f.TextValue}
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.SentMessages = append(f.SentMessages, newOutbound(what, opts))
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	f.EditedTargets = append(f.EditedTargets, newOutbound(what, opts))
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) > 0 {
		f.Answers = append(f.Answers, resp[0])
	} else {
		f.Answers = append(f.Answers, &tele.CallbackResponse{})
	}
	return nil
}

// LastSent returns the most recent Send, if any.
func (f *FakeContext) LastSent() (Outbound, bool) {
	if len(f.SentMessages) == 0 {
		return Outbound{}, false
	}
	return f.SentMessages[len(f.SentMessages)-1], true
}

func newOutbound(what interface{}, opts []interface{}) Outbound {
	out := Outbound{}
	switch v := what.(type) {
	case string:
		out.Text = v
	case *tele.ReplyMarkup:
		out.Markup = v
	}
	for _, o := range opts {
		if m, ok := o.(*tele.ReplyMarkup); ok {
			out.Markup = m
		}
	}
	return out
}

// FakeSender satisfies the handler's message-sender indirection and records
// what was sent, handing back growing message ids.
type FakeSender struct {
	NextID   int
	Messages []Outbound
}

func (s *FakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	s.NextID++
	s.Messages = append(s.Messages, newOutbound(what, opts))
	return &tele.Message{ID: s.NextID}, nil
}
