package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound     = "Movie not found"
	MovieNotFoundTmdb = "Movie not found on TMDB"
	RatingNotFound    = "Rating not found"
	ReviewNotFound    = "Review not found"
	UserNotFound      = "User not found"
	//----------------------
	InvalidToken = "Invalid/Stale Token"
	NotLoggedIn  = "You need to be logged in!"
	//----------------------
	InvalidCredentials = "Invalid credentials"
	//----------------------
	BadRequestBody       = "Incorrect request body"
	UsernameAlreadyExist = "Username already exists"
	MovieAlreadyExist    = "Movie already exists"
	//----------------------
	RatingOutOfRange   = "Rating must be between 1 and 10"
	EmptyReviewContent = "Review content cannot be empty"
	EmptySearchQuery   = "Search query cannot be empty"
	EmptySearchTitle   = "Search title cannot be empty"
	ShortPassword      = "Password must be at least 6 characters"
	MissingCredentials = "Username and password are required"
	InvalidTmdbId      = "TMDB ID does not exist"
	//----------------------
	AdminsOnly      = "Must be an admin to add movies"
	NotReviewAuthor = "Cannot modify another user's review"
	NotRatingAuthor = "Cannot modify another user's rating"
	//----------------------
)
