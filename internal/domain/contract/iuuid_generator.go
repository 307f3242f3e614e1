package contract

// IUUIDGenerator abstracts id generation for content registry writes.
type IUUIDGenerator interface {
	NewUUID() string
}
