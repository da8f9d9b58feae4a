// Code generated by ent, DO NOT EDIT.

package importedquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldFilename, v))
}

// ImportedFrom applies equality check predicate on the "imported_from" field. It's identical to ImportedFromEQ.
func ImportedFrom(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldImportedFrom, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldImportedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldContainsFold(FieldFilename, v))
}

// ImportedFromEQ applies the EQ predicate on the "imported_from" field.
func ImportedFromEQ(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldImportedFrom, v))
}

// ImportedFromNEQ applies the NEQ predicate on the "imported_from" field.
func ImportedFromNEQ(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNEQ(FieldImportedFrom, v))
}

// ImportedFromIn applies the In predicate on the "imported_from" field.
func ImportedFromIn(vs ...string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldIn(FieldImportedFrom, vs...))
}

// ImportedFromNotIn applies the NotIn predicate on the "imported_from" field.
func ImportedFromNotIn(vs ...string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNotIn(FieldImportedFrom, vs...))
}

// ImportedFromGT applies the GT predicate on the "imported_from" field.
func ImportedFromGT(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGT(FieldImportedFrom, v))
}

// ImportedFromGTE applies the GTE predicate on the "imported_from" field.
func ImportedFromGTE(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGTE(FieldImportedFrom, v))
}

// ImportedFromLT applies the LT predicate on the "imported_from" field.
func ImportedFromLT(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLT(FieldImportedFrom, v))
}

// ImportedFromLTE applies the LTE predicate on the "imported_from" field.
func ImportedFromLTE(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLTE(FieldImportedFrom, v))
}

// ImportedFromContains applies the Contains predicate on the "imported_from" field.
func ImportedFromContains(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldContains(FieldImportedFrom, v))
}

// ImportedFromHasPrefix applies the HasPrefix predicate on the "imported_from" field.
func ImportedFromHasPrefix(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldHasPrefix(FieldImportedFrom, v))
}

// ImportedFromHasSuffix applies the HasSuffix predicate on the "imported_from" field.
func ImportedFromHasSuffix(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldHasSuffix(FieldImportedFrom, v))
}

// ImportedFromEqualFold applies the EqualFold predicate on the "imported_from" field.
func ImportedFromEqualFold(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEqualFold(FieldImportedFrom, v))
}

// ImportedFromContainsFold applies the ContainsFold predicate on the "imported_from" field.
func ImportedFromContainsFold(v string) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldContainsFold(FieldImportedFrom, v))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportedQuestion) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportedQuestion) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportedQuestion) predicate.ImportedQuestion {
	return predicate.ImportedQuestion(sql.NotPredicates(p))
}
