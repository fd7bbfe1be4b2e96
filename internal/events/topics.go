package events

const (
	TopicOrderPlaced       = "storefront.order.placed"
	TopicPostCreated       = "storefront.exchange.post_created"
	TopicCommentAdded      = "storefront.exchange.comment_added"
	TopicPostStatusChanged = "storefront.exchange.status_changed"
	TopicPilotRegistered   = "storefront.pilot.registered"
)

var AllTopics = []string{
	TopicOrderPlaced,
	TopicPostCreated,
	TopicCommentAdded,
	TopicPostStatusChanged,
	TopicPilotRegistered,
}

// Partition key = aggregate id so events of one post/order stay ordered.
func PartitionKey(id string) []byte { return []byte(id) }
