package constants

// Context and session keys
const (
	SessionKeyUserID  = "user_id"
	ContextKeyUser    = "user"
	SessionCookieName = "assigner_session"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Slugs
const (
	SlugSuffixLength = 4
	MaxSlugAttempts  = 5
	FallbackSlug     = "user"
)

// Password policy
const (
	MinPasswordLength  = 8
	PasswordSpecialSet = "@$!%*?&"
)

// DateOfBirthLayout is the accepted wire format for dates of birth.
const DateOfBirthLayout = "2006-01-02"

// MaxAIGeneratedTasks caps the number of drafts accepted from one generation call.
const MaxAIGeneratedTasks = 20
