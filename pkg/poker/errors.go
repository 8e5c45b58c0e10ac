package poker

// HandError is returned when a collection of cards is not a valid hand
type HandError string

func (h HandError) Error() string {
	return string(h)
}

// hand validation errors
const (
	ErrNotEnoughCards = HandError("Not enough cards")
	ErrTooManyCards   = HandError("Too many cards")
	ErrDuplicateCards = HandError("Duplicate cards")
)
