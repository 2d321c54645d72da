package domain

// Notification is pushed by the hub to every member of Room.
// Origin, when set, is the connection that caused it.
type Notification struct {
	Op       UserOperation `json:"op"`
	Room     Room          `json:"-"`
	TargetID int64         `json:"-"`
	Payload  any           `json:"data"`
	Origin   *ConnectionID `json:"-"`
}
