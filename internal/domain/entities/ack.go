package entities

// Mutation acknowledgments report the store's view of an operation's
// effect and are returned verbatim to the caller. Inserts have no ack
// type: create endpoints return the created record itself.

// UpdateAck reports how many records an update matched and modified.
// A zero matched count is the not-found signal for update endpoints.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck reports how many records a delete removed.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
