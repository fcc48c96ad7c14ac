package server

// Activity is the Bot-Framework-style message envelope the chat
// emulator posts to /api/messages. Only the fields the bot reads are
// decoded; everything else in the payload is ignored.
type Activity struct {
	Type         string           `json:"type"`
	Text         string           `json:"text"`
	From         ChannelAccount   `json:"from"`
	Recipient    ChannelAccount   `json:"recipient"`
	MembersAdded []ChannelAccount `json:"membersAdded,omitempty"`
}

// ChannelAccount identifies one conversation participant.
type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const (
	activityMessage            = "message"
	activityConversationUpdate = "conversationUpdate"
)

// Reply is the outbound message payload.
type Reply struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textReply(text string) Reply {
	return Reply{Type: activityMessage, Text: text}
}
