package storage

import "time"

const (
	// Full snapshot of the exchange board: []exchange.Post
	KeyExchangePosts = "exchange_posts"

	// Session pointer: the logged-in user without credentials.
	KeySession = "gundam_user"

	// Directory: every registered pilot with the plaintext passcode.
	KeyUsersDB = "gundam_users_db"

	// Feed consumer dedup: feed:dedup:{event_id}
	KeyFeedDedup = "feed:dedup:%s"
)

var TTLDedup = 48 * time.Hour
