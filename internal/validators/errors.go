package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Outbound message rules. Messages are shown to the user as-is.
	ErrEmptyRecipient     = errors.New("Enter a recipient phone number.")
	ErrInvalidMessageType = errors.New("Choose a supported message type.")
	ErrEmptyText          = errors.New("Type a message to send.")
	ErrMissingMedia       = errors.New("Provide a media id or a media link.")
	ErrEmptyFileName      = errors.New("Choose a file to upload.")

	// Catalog rules.
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyPhone       = errors.New("phone is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrEmptyNotes       = errors.New("notes are required")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidReference = errors.New("campaign and contact are required")
	ErrMissingDueDate   = errors.New("due date is required")
	ErrEmptyBody        = errors.New("template body is required")
	ErrInvalidHeader    = errors.New("invalid template header")
	ErrInvalidButton    = errors.New("invalid template button")
	ErrTooManyButtons   = errors.New("use up to 2 call-to-action and 3 quick reply buttons")
)
