// Code generated by ent, DO NOT EDIT.

package scheduleupdate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLTE(FieldID, id))
}

// UpdateID applies equality check predicate on the "update_id" field. It's identical to UpdateIDEQ.
func UpdateID(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldUpdateID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldDate, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldImportedAt, v))
}

// UpdateIDEQ applies the EQ predicate on the "update_id" field.
func UpdateIDEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldUpdateID, v))
}

// UpdateIDNEQ applies the NEQ predicate on the "update_id" field.
func UpdateIDNEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNEQ(FieldUpdateID, v))
}

// UpdateIDIn applies the In predicate on the "update_id" field.
func UpdateIDIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIn(FieldUpdateID, vs...))
}

// UpdateIDNotIn applies the NotIn predicate on the "update_id" field.
func UpdateIDNotIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotIn(FieldUpdateID, vs...))
}

// UpdateIDGT applies the GT predicate on the "update_id" field.
func UpdateIDGT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGT(FieldUpdateID, v))
}

// UpdateIDGTE applies the GTE predicate on the "update_id" field.
func UpdateIDGTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGTE(FieldUpdateID, v))
}

// UpdateIDLT applies the LT predicate on the "update_id" field.
func UpdateIDLT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLT(FieldUpdateID, v))
}

// UpdateIDLTE applies the LTE predicate on the "update_id" field.
func UpdateIDLTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLTE(FieldUpdateID, v))
}

// UpdateIDContains applies the Contains predicate on the "update_id" field.
func UpdateIDContains(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContains(FieldUpdateID, v))
}

// UpdateIDHasPrefix applies the HasPrefix predicate on the "update_id" field.
func UpdateIDHasPrefix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasPrefix(FieldUpdateID, v))
}

// UpdateIDHasSuffix applies the HasSuffix predicate on the "update_id" field.
func UpdateIDHasSuffix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasSuffix(FieldUpdateID, v))
}

// UpdateIDEqualFold applies the EqualFold predicate on the "update_id" field.
func UpdateIDEqualFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEqualFold(FieldUpdateID, v))
}

// UpdateIDContainsFold applies the ContainsFold predicate on the "update_id" field.
func UpdateIDContainsFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContainsFold(FieldUpdateID, v))
}

// EnabledProblemTypesIsNil applies the IsNil predicate on the "enabled_problem_types" field.
func EnabledProblemTypesIsNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIsNull(FieldEnabledProblemTypes))
}

// EnabledProblemTypesNotNil applies the NotNil predicate on the "enabled_problem_types" field.
func EnabledProblemTypesNotNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotNull(FieldEnabledProblemTypes))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasSuffix(FieldDate, v))
}

// DateIsNil applies the IsNil predicate on the "date" field.
func DateIsNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIsNull(FieldDate))
}

// DateNotNil applies the NotNil predicate on the "date" field.
func DateNotNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotNull(FieldDate))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContainsFold(FieldDate, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldContainsFold(FieldLabel, v))
}

// ProblemTypesIsNil applies the IsNil predicate on the "problem_types" field.
func ProblemTypesIsNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIsNull(FieldProblemTypes))
}

// ProblemTypesNotNil applies the NotNil predicate on the "problem_types" field.
func ProblemTypesNotNil() predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotNull(FieldProblemTypes))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleUpdate) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleUpdate) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleUpdate) predicate.ScheduleUpdate {
	return predicate.ScheduleUpdate(sql.NotPredicates(p))
}
