package shared

const (
	UserID = "user_id"

	// Session token transport. Cookie value may arrive wrapped in quote
	// characters after a client round trip; strip before verification.
	SessionCookie = "X-SESSION-TOKEN"

	DefaultLanguageCode = "en"

	ChallengeTypeCounter        = "counter"
	ChallengeTypeDailyChallenge = "dailychallenge"
)
