package config

import "fmt"

// CacheKeyStruct namespaces every Redis key and channel the backend touches.
type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// FacultyFeedChannel returns the PubSub channel for a faculty member's
// personal notification feed.
func (r *CacheKeyStruct) FacultyFeedChannel(email string) string {
	return fmt.Sprintf("feed:faculty:%s", email)
}

// AdminFeedChannel returns the PubSub channel for a department's admin feed.
func (r *CacheKeyStruct) AdminFeedChannel(department string) string {
	return fmt.Sprintf("feed:admin:%s", department)
}

var CacheKey = NewCacheKeyStruct()

// WorkerKeyStruct holds the Redis list names consumed by background workers.
type WorkerKeyStruct struct {
	BroadcastQueue string
}

var WorkerKey = &WorkerKeyStruct{
	BroadcastQueue: "notification_broadcast_queue",
}
