// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/diffuselabs/diffused/ent/challengeevent"
	"github.com/diffuselabs/diffused/ent/lessonevent"
	"github.com/diffuselabs/diffused/ent/llmrequestevent"
	"github.com/diffuselabs/diffused/ent/reviewevent"
	"github.com/diffuselabs/diffused/ent/schema"
	"github.com/diffuselabs/diffused/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescSessionID is the schema descriptor for session_id field.
	challengeeventDescSessionID := challengeeventFields[0].Descriptor()
	// challengeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	challengeevent.SessionIDValidator = challengeeventDescSessionID.Validators[0].(func(string) error)
	// challengeeventDescChallengeID is the schema descriptor for challenge_id field.
	challengeeventDescChallengeID := challengeeventFields[1].Descriptor()
	// challengeevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengeevent.ChallengeIDValidator = challengeeventDescChallengeID.Validators[0].(func(string) error)
	// challengeeventDescChallengeType is the schema descriptor for challenge_type field.
	challengeeventDescChallengeType := challengeeventFields[2].Descriptor()
	// challengeevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	challengeevent.ChallengeTypeValidator = challengeeventDescChallengeType.Validators[0].(func(string) error)
	// challengeeventDescUnderstanding is the schema descriptor for understanding field.
	challengeeventDescUnderstanding := challengeeventFields[3].Descriptor()
	// challengeevent.UnderstandingValidator is a validator for the "understanding" field. It is called by the builders before save.
	challengeevent.UnderstandingValidator = challengeeventDescUnderstanding.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescChallengeID is the schema descriptor for challenge_id field.
	revieweventDescChallengeID := revieweventFields[1].Descriptor()
	// reviewevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	reviewevent.ChallengeIDValidator = revieweventDescChallengeID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[0].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
