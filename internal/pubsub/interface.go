package pubsub

// PubSubClient fans domain events out to interested consumers.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
