// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the challengeevent type in the database.
	Label = "challenge_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldChallengeType holds the string denoting the challenge_type field in the database.
	FieldChallengeType = "challenge_type"
	// FieldUnderstanding holds the string denoting the understanding field in the database.
	FieldUnderstanding = "understanding"
	// Table holds the table name of the challengeevent in the database.
	Table = "challenge_events"
)

// Columns holds all SQL columns for challengeevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldChallengeID,
	FieldChallengeType,
	FieldUnderstanding,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	ChallengeTypeValidator func(string) error
	// UnderstandingValidator is a validator for the "understanding" field. It is called by the builders before save.
	UnderstandingValidator func(string) error
)

// OrderOption defines the ordering options for the ChallengeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByChallengeType orders the results by the challenge_type field.
func ByChallengeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeType, opts...).ToFunc()
}

// ByUnderstanding orders the results by the understanding field.
func ByUnderstanding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnderstanding, opts...).ToFunc()
}
