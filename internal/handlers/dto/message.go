package dto

// JoinPayload: client -> server room join request.
type JoinPayload struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// MessagePayload: client -> server chat text, scoped to the sender's bound
// room and display name.
type MessagePayload struct {
	Content string `json:"content"`
}

// ReceivePayload: server -> room members delivery event.
type ReceivePayload struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// RetractionPayload: server -> room members compensating event. Receivers
// correlate by exact text match to remove the message from view.
type RetractionPayload struct {
	Content string `json:"content"`
}
