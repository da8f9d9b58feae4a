// Code generated by ent, DO NOT EDIT.

package sessionsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSessionID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndedAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldDurationMinutes, v))
}

// TopicFilter applies equality check predicate on the "topic_filter" field. It's identical to TopicFilterEQ.
func TopicFilter(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldTopicFilter, v))
}

// QuestionsViewed applies equality check predicate on the "questions_viewed" field. It's identical to QuestionsViewedEQ.
func QuestionsViewed(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldQuestionsViewed, v))
}

// SolutionsRevealed applies equality check predicate on the "solutions_revealed" field. It's identical to SolutionsRevealedEQ.
func SolutionsRevealed(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSolutionsRevealed, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldSessionID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldEndedAt, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldDurationMinutes, v))
}

// TopicFilterEQ applies the EQ predicate on the "topic_filter" field.
func TopicFilterEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldTopicFilter, v))
}

// TopicFilterNEQ applies the NEQ predicate on the "topic_filter" field.
func TopicFilterNEQ(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldTopicFilter, v))
}

// TopicFilterIn applies the In predicate on the "topic_filter" field.
func TopicFilterIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldTopicFilter, vs...))
}

// TopicFilterNotIn applies the NotIn predicate on the "topic_filter" field.
func TopicFilterNotIn(vs ...string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldTopicFilter, vs...))
}

// TopicFilterGT applies the GT predicate on the "topic_filter" field.
func TopicFilterGT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldTopicFilter, v))
}

// TopicFilterGTE applies the GTE predicate on the "topic_filter" field.
func TopicFilterGTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldTopicFilter, v))
}

// TopicFilterLT applies the LT predicate on the "topic_filter" field.
func TopicFilterLT(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldTopicFilter, v))
}

// TopicFilterLTE applies the LTE predicate on the "topic_filter" field.
func TopicFilterLTE(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldTopicFilter, v))
}

// TopicFilterContains applies the Contains predicate on the "topic_filter" field.
func TopicFilterContains(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContains(FieldTopicFilter, v))
}

// TopicFilterHasPrefix applies the HasPrefix predicate on the "topic_filter" field.
func TopicFilterHasPrefix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasPrefix(FieldTopicFilter, v))
}

// TopicFilterHasSuffix applies the HasSuffix predicate on the "topic_filter" field.
func TopicFilterHasSuffix(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldHasSuffix(FieldTopicFilter, v))
}

// TopicFilterIsNil applies the IsNil predicate on the "topic_filter" field.
func TopicFilterIsNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIsNull(FieldTopicFilter))
}

// TopicFilterNotNil applies the NotNil predicate on the "topic_filter" field.
func TopicFilterNotNil() predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotNull(FieldTopicFilter))
}

// TopicFilterEqualFold applies the EqualFold predicate on the "topic_filter" field.
func TopicFilterEqualFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEqualFold(FieldTopicFilter, v))
}

// TopicFilterContainsFold applies the ContainsFold predicate on the "topic_filter" field.
func TopicFilterContainsFold(v string) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldContainsFold(FieldTopicFilter, v))
}

// QuestionsViewedEQ applies the EQ predicate on the "questions_viewed" field.
func QuestionsViewedEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldQuestionsViewed, v))
}

// QuestionsViewedNEQ applies the NEQ predicate on the "questions_viewed" field.
func QuestionsViewedNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldQuestionsViewed, v))
}

// QuestionsViewedIn applies the In predicate on the "questions_viewed" field.
func QuestionsViewedIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldQuestionsViewed, vs...))
}

// QuestionsViewedNotIn applies the NotIn predicate on the "questions_viewed" field.
func QuestionsViewedNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldQuestionsViewed, vs...))
}

// QuestionsViewedGT applies the GT predicate on the "questions_viewed" field.
func QuestionsViewedGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldQuestionsViewed, v))
}

// QuestionsViewedGTE applies the GTE predicate on the "questions_viewed" field.
func QuestionsViewedGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldQuestionsViewed, v))
}

// QuestionsViewedLT applies the LT predicate on the "questions_viewed" field.
func QuestionsViewedLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldQuestionsViewed, v))
}

// QuestionsViewedLTE applies the LTE predicate on the "questions_viewed" field.
func QuestionsViewedLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldQuestionsViewed, v))
}

// SolutionsRevealedEQ applies the EQ predicate on the "solutions_revealed" field.
func SolutionsRevealedEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldEQ(FieldSolutionsRevealed, v))
}

// SolutionsRevealedNEQ applies the NEQ predicate on the "solutions_revealed" field.
func SolutionsRevealedNEQ(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNEQ(FieldSolutionsRevealed, v))
}

// SolutionsRevealedIn applies the In predicate on the "solutions_revealed" field.
func SolutionsRevealedIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldIn(FieldSolutionsRevealed, vs...))
}

// SolutionsRevealedNotIn applies the NotIn predicate on the "solutions_revealed" field.
func SolutionsRevealedNotIn(vs ...int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldNotIn(FieldSolutionsRevealed, vs...))
}

// SolutionsRevealedGT applies the GT predicate on the "solutions_revealed" field.
func SolutionsRevealedGT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGT(FieldSolutionsRevealed, v))
}

// SolutionsRevealedGTE applies the GTE predicate on the "solutions_revealed" field.
func SolutionsRevealedGTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldGTE(FieldSolutionsRevealed, v))
}

// SolutionsRevealedLT applies the LT predicate on the "solutions_revealed" field.
func SolutionsRevealedLT(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLT(FieldSolutionsRevealed, v))
}

// SolutionsRevealedLTE applies the LTE predicate on the "solutions_revealed" field.
func SolutionsRevealedLTE(v int) predicate.SessionSummary {
	return predicate.SessionSummary(sql.FieldLTE(FieldSolutionsRevealed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionSummary) predicate.SessionSummary {
	return predicate.SessionSummary(sql.NotPredicates(p))
}
