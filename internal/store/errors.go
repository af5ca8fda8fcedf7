package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when no contact has the requested id.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrCampaignNotFound is returned when no campaign has the requested id.
	ErrCampaignNotFound = errors.New("campaign was not found")

	// ErrTemplateNotFound is returned when no template has the requested id.
	ErrTemplateNotFound = errors.New("template was not found")

	ErrFollowUpNotFound = errors.New("follow-up was not found")

	ErrConversationNotFound = errors.New("conversation was not found")

	// ErrAlreadyExists is returned when an insert hits a unique constraint.
	ErrAlreadyExists = errors.New("record already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
