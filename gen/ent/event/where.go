// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fsun/ski-results/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// CompetitionID applies equality check predicate on the "competition_id" field. It's identical to CompetitionIDEQ.
func CompetitionID(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCompetitionID, v))
}

// Discipline applies equality check predicate on the "discipline" field. It's identical to DisciplineEQ.
func Discipline(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDiscipline, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldGender, v))
}

// AgeGroup applies equality check predicate on the "age_group" field. It's identical to AgeGroupEQ.
func AgeGroup(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAgeGroup, v))
}

// RoundType applies equality check predicate on the "round_type" field. It's identical to RoundTypeEQ.
func RoundType(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoundType, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSourceFile, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNeedsReview, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldReviewNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CompetitionIDEQ applies the EQ predicate on the "competition_id" field.
func CompetitionIDEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCompetitionID, v))
}

// CompetitionIDNEQ applies the NEQ predicate on the "competition_id" field.
func CompetitionIDNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCompetitionID, v))
}

// CompetitionIDIn applies the In predicate on the "competition_id" field.
func CompetitionIDIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCompetitionID, vs...))
}

// CompetitionIDNotIn applies the NotIn predicate on the "competition_id" field.
func CompetitionIDNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCompetitionID, vs...))
}

// DisciplineEQ applies the EQ predicate on the "discipline" field.
func DisciplineEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDiscipline, v))
}

// DisciplineNEQ applies the NEQ predicate on the "discipline" field.
func DisciplineNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldDiscipline, v))
}

// DisciplineIn applies the In predicate on the "discipline" field.
func DisciplineIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldDiscipline, vs...))
}

// DisciplineNotIn applies the NotIn predicate on the "discipline" field.
func DisciplineNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldDiscipline, vs...))
}

// DisciplineGT applies the GT predicate on the "discipline" field.
func DisciplineGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldDiscipline, v))
}

// DisciplineGTE applies the GTE predicate on the "discipline" field.
func DisciplineGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldDiscipline, v))
}

// DisciplineLT applies the LT predicate on the "discipline" field.
func DisciplineLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldDiscipline, v))
}

// DisciplineLTE applies the LTE predicate on the "discipline" field.
func DisciplineLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldDiscipline, v))
}

// DisciplineContains applies the Contains predicate on the "discipline" field.
func DisciplineContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldDiscipline, v))
}

// DisciplineHasPrefix applies the HasPrefix predicate on the "discipline" field.
func DisciplineHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldDiscipline, v))
}

// DisciplineHasSuffix applies the HasSuffix predicate on the "discipline" field.
func DisciplineHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldDiscipline, v))
}

// DisciplineEqualFold applies the EqualFold predicate on the "discipline" field.
func DisciplineEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldDiscipline, v))
}

// DisciplineContainsFold applies the ContainsFold predicate on the "discipline" field.
func DisciplineContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldDiscipline, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldGender, v))
}

// AgeGroupEQ applies the EQ predicate on the "age_group" field.
func AgeGroupEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAgeGroup, v))
}

// AgeGroupNEQ applies the NEQ predicate on the "age_group" field.
func AgeGroupNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldAgeGroup, v))
}

// AgeGroupIn applies the In predicate on the "age_group" field.
func AgeGroupIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldAgeGroup, vs...))
}

// AgeGroupNotIn applies the NotIn predicate on the "age_group" field.
func AgeGroupNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldAgeGroup, vs...))
}

// AgeGroupGT applies the GT predicate on the "age_group" field.
func AgeGroupGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldAgeGroup, v))
}

// AgeGroupGTE applies the GTE predicate on the "age_group" field.
func AgeGroupGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldAgeGroup, v))
}

// AgeGroupLT applies the LT predicate on the "age_group" field.
func AgeGroupLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldAgeGroup, v))
}

// AgeGroupLTE applies the LTE predicate on the "age_group" field.
func AgeGroupLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldAgeGroup, v))
}

// AgeGroupContains applies the Contains predicate on the "age_group" field.
func AgeGroupContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldAgeGroup, v))
}

// AgeGroupHasPrefix applies the HasPrefix predicate on the "age_group" field.
func AgeGroupHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldAgeGroup, v))
}

// AgeGroupHasSuffix applies the HasSuffix predicate on the "age_group" field.
func AgeGroupHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldAgeGroup, v))
}

// AgeGroupIsNil applies the IsNil predicate on the "age_group" field.
func AgeGroupIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAgeGroup))
}

// AgeGroupNotNil applies the NotNil predicate on the "age_group" field.
func AgeGroupNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAgeGroup))
}

// AgeGroupEqualFold applies the EqualFold predicate on the "age_group" field.
func AgeGroupEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldAgeGroup, v))
}

// AgeGroupContainsFold applies the ContainsFold predicate on the "age_group" field.
func AgeGroupContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldAgeGroup, v))
}

// RoundTypeEQ applies the EQ predicate on the "round_type" field.
func RoundTypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoundType, v))
}

// RoundTypeNEQ applies the NEQ predicate on the "round_type" field.
func RoundTypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRoundType, v))
}

// RoundTypeIn applies the In predicate on the "round_type" field.
func RoundTypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRoundType, vs...))
}

// RoundTypeNotIn applies the NotIn predicate on the "round_type" field.
func RoundTypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRoundType, vs...))
}

// RoundTypeGT applies the GT predicate on the "round_type" field.
func RoundTypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRoundType, v))
}

// RoundTypeGTE applies the GTE predicate on the "round_type" field.
func RoundTypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRoundType, v))
}

// RoundTypeLT applies the LT predicate on the "round_type" field.
func RoundTypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRoundType, v))
}

// RoundTypeLTE applies the LTE predicate on the "round_type" field.
func RoundTypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRoundType, v))
}

// RoundTypeContains applies the Contains predicate on the "round_type" field.
func RoundTypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRoundType, v))
}

// RoundTypeHasPrefix applies the HasPrefix predicate on the "round_type" field.
func RoundTypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRoundType, v))
}

// RoundTypeHasSuffix applies the HasSuffix predicate on the "round_type" field.
func RoundTypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRoundType, v))
}

// RoundTypeIsNil applies the IsNil predicate on the "round_type" field.
func RoundTypeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRoundType))
}

// RoundTypeNotNil applies the NotNil predicate on the "round_type" field.
func RoundTypeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRoundType))
}

// RoundTypeEqualFold applies the EqualFold predicate on the "round_type" field.
func RoundTypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRoundType, v))
}

// RoundTypeContainsFold applies the ContainsFold predicate on the "round_type" field.
func RoundTypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRoundType, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventDate, v))
}

// EventDateContains applies the Contains predicate on the "event_date" field.
func EventDateContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventDate, v))
}

// EventDateHasPrefix applies the HasPrefix predicate on the "event_date" field.
func EventDateHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventDate, v))
}

// EventDateHasSuffix applies the HasSuffix predicate on the "event_date" field.
func EventDateHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventDate, v))
}

// EventDateIsNil applies the IsNil predicate on the "event_date" field.
func EventDateIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEventDate))
}

// EventDateNotNil applies the NotNil predicate on the "event_date" field.
func EventDateNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEventDate))
}

// EventDateEqualFold applies the EqualFold predicate on the "event_date" field.
func EventDateEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventDate, v))
}

// EventDateContainsFold applies the ContainsFold predicate on the "event_date" field.
func EventDateContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventDate, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSourceFile, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldNeedsReview, v))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldReviewNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCompetition applies the HasEdge predicate on the "competition" edge.
func HasCompetition() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompetitionTable, CompetitionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompetitionWith applies the HasEdge predicate on the "competition" edge with a given conditions (other predicates).
func HasCompetitionWith(preds ...predicate.Competition) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newCompetitionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.RaceResult) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
