// Code generated by ent, DO NOT EDIT.

package diagram

import (
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Diagram {
	return predicate.Diagram(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Diagram {
	return predicate.Diagram(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Diagram {
	return predicate.Diagram(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldFilename, v))
}

// DataURL applies equality check predicate on the "data_url" field. It's identical to DataURLEQ.
func DataURL(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldDataURL, v))
}

// ImportedFrom applies equality check predicate on the "imported_from" field. It's identical to ImportedFromEQ.
func ImportedFrom(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldImportedFrom, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContainsFold(FieldFilename, v))
}

// DataURLEQ applies the EQ predicate on the "data_url" field.
func DataURLEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldDataURL, v))
}

// DataURLNEQ applies the NEQ predicate on the "data_url" field.
func DataURLNEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNEQ(FieldDataURL, v))
}

// DataURLIn applies the In predicate on the "data_url" field.
func DataURLIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldIn(FieldDataURL, vs...))
}

// DataURLNotIn applies the NotIn predicate on the "data_url" field.
func DataURLNotIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNotIn(FieldDataURL, vs...))
}

// DataURLGT applies the GT predicate on the "data_url" field.
func DataURLGT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGT(FieldDataURL, v))
}

// DataURLGTE applies the GTE predicate on the "data_url" field.
func DataURLGTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGTE(FieldDataURL, v))
}

// DataURLLT applies the LT predicate on the "data_url" field.
func DataURLLT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLT(FieldDataURL, v))
}

// DataURLLTE applies the LTE predicate on the "data_url" field.
func DataURLLTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLTE(FieldDataURL, v))
}

// DataURLContains applies the Contains predicate on the "data_url" field.
func DataURLContains(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContains(FieldDataURL, v))
}

// DataURLHasPrefix applies the HasPrefix predicate on the "data_url" field.
func DataURLHasPrefix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasPrefix(FieldDataURL, v))
}

// DataURLHasSuffix applies the HasSuffix predicate on the "data_url" field.
func DataURLHasSuffix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasSuffix(FieldDataURL, v))
}

// DataURLEqualFold applies the EqualFold predicate on the "data_url" field.
func DataURLEqualFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEqualFold(FieldDataURL, v))
}

// DataURLContainsFold applies the ContainsFold predicate on the "data_url" field.
func DataURLContainsFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContainsFold(FieldDataURL, v))
}

// ImportedFromEQ applies the EQ predicate on the "imported_from" field.
func ImportedFromEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEQ(FieldImportedFrom, v))
}

// ImportedFromNEQ applies the NEQ predicate on the "imported_from" field.
func ImportedFromNEQ(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNEQ(FieldImportedFrom, v))
}

// ImportedFromIn applies the In predicate on the "imported_from" field.
func ImportedFromIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldIn(FieldImportedFrom, vs...))
}

// ImportedFromNotIn applies the NotIn predicate on the "imported_from" field.
func ImportedFromNotIn(vs ...string) predicate.Diagram {
	return predicate.Diagram(sql.FieldNotIn(FieldImportedFrom, vs...))
}

// ImportedFromGT applies the GT predicate on the "imported_from" field.
func ImportedFromGT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGT(FieldImportedFrom, v))
}

// ImportedFromGTE applies the GTE predicate on the "imported_from" field.
func ImportedFromGTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldGTE(FieldImportedFrom, v))
}

// ImportedFromLT applies the LT predicate on the "imported_from" field.
func ImportedFromLT(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLT(FieldImportedFrom, v))
}

// ImportedFromLTE applies the LTE predicate on the "imported_from" field.
func ImportedFromLTE(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldLTE(FieldImportedFrom, v))
}

// ImportedFromContains applies the Contains predicate on the "imported_from" field.
func ImportedFromContains(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContains(FieldImportedFrom, v))
}

// ImportedFromHasPrefix applies the HasPrefix predicate on the "imported_from" field.
func ImportedFromHasPrefix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasPrefix(FieldImportedFrom, v))
}

// ImportedFromHasSuffix applies the HasSuffix predicate on the "imported_from" field.
func ImportedFromHasSuffix(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldHasSuffix(FieldImportedFrom, v))
}

// ImportedFromEqualFold applies the EqualFold predicate on the "imported_from" field.
func ImportedFromEqualFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldEqualFold(FieldImportedFrom, v))
}

// ImportedFromContainsFold applies the ContainsFold predicate on the "imported_from" field.
func ImportedFromContainsFold(v string) predicate.Diagram {
	return predicate.Diagram(sql.FieldContainsFold(FieldImportedFrom, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Diagram) predicate.Diagram {
	return predicate.Diagram(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Diagram) predicate.Diagram {
	return predicate.Diagram(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Diagram) predicate.Diagram {
	return predicate.Diagram(sql.NotPredicates(p))
}
