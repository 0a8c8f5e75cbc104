package lex

import "fmt"

// DialogActionType is the action the host should take next.
type DialogActionType string

const (
	ActionElicitSlot DialogActionType = "ElicitSlot"
	ActionDelegate   DialogActionType = "Delegate"
	ActionClose      DialogActionType = "Close"
)

// FulfillmentState reports the outcome carried by a Close action.
type FulfillmentState string

const (
	Fulfilled FulfillmentState = "Fulfilled"
	Failed    FulfillmentState = "Failed"
)

// ContentTypePlainText is the only content type this bot emits.
const ContentTypePlainText = "PlainText"

// Message is a chat message returned to the host.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a plain-text message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

// DialogAction is the tagged union of ElicitSlot, Delegate and Close.
// Fields not belonging to the active variant are omitted from JSON.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

// Response is the terminal artifact handed back to the host for one turn.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ElicitSlot asks the host to re-prompt the user for slotToElicit.
// The slot key is added (as null) when missing so the response always names
// a slot present in slots.
func ElicitSlot(sessionAttributes map[string]string, intentName string, slots Slots, slotToElicit string, message *Message) *Response {
	if slots == nil {
		slots = Slots{}
	}
	if _, ok := slots[slotToElicit]; !ok {
		slots[slotToElicit] = nil
	}
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate hands control back to the host to choose the next prompt.
func Delegate(sessionAttributes map[string]string, slots Slots) *Response {
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:  ActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the turn. A nil message is replaced with an empty plain-text
// message so Close always carries one.
func Close(sessionAttributes map[string]string, state FulfillmentState, message *Message) *Response {
	if message == nil {
		message = PlainText("")
	}
	return &Response{
		SessionAttributes: sessionAttributes,
		DialogAction: DialogAction{
			Type:             ActionClose,
			FulfillmentState: state,
			Message:          message,
		},
	}
}

// FulfillWithSuccess closes the turn with content as the answer.
func FulfillWithSuccess(req *IntentRequest, content string) *Response {
	return Close(req.SessionAttributes, Fulfilled, PlainText(content))
}

// FulfillWithError closes the turn with an error-flavored message. The turn
// still reports Fulfilled since the host only needs it ended.
func FulfillWithError(req *IntentRequest, errText string) *Response {
	return FulfillWithSuccess(req, ErrorMessage(errText))
}

// ErrorMessage formats the text shown to the user when a handler fails.
func ErrorMessage(errText string) string {
	return fmt.Sprintf("Sorry something failed. I got this error: %s.", errText)
}
