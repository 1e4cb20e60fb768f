// Code generated by ent, DO NOT EDIT.

package raceresult

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fsun/ski-results/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldEventID, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRank, v))
}

// Bib applies equality check predicate on the "bib" field. It's identical to BibEQ.
func Bib(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldBib, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldName, v))
}

// NamePinyin applies equality check predicate on the "name_pinyin" field. It's identical to NamePinyinEQ.
func NamePinyin(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldNamePinyin, v))
}

// Team applies equality check predicate on the "team" field. It's identical to TeamEQ.
func Team(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTeam, v))
}

// Run1Time applies equality check predicate on the "run1_time" field. It's identical to Run1TimeEQ.
func Run1Time(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun1Time, v))
}

// Run2Time applies equality check predicate on the "run2_time" field. It's identical to Run2TimeEQ.
func Run2Time(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun2Time, v))
}

// TotalTime applies equality check predicate on the "total_time" field. It's identical to TotalTimeEQ.
func TotalTime(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTotalTime, v))
}

// TimeDiff applies equality check predicate on the "time_diff" field. It's identical to TimeDiffEQ.
func TimeDiff(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTimeDiff, v))
}

// Run1Seconds applies equality check predicate on the "run1_seconds" field. It's identical to Run1SecondsEQ.
func Run1Seconds(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun1Seconds, v))
}

// Run2Seconds applies equality check predicate on the "run2_seconds" field. It's identical to Run2SecondsEQ.
func Run2Seconds(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun2Seconds, v))
}

// TotalSeconds applies equality check predicate on the "total_seconds" field. It's identical to TotalSecondsEQ.
func TotalSeconds(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTotalSeconds, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldStatus, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldEventID, vs...))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldRank, v))
}

// RankIsNil applies the IsNil predicate on the "rank" field.
func RankIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldRank))
}

// RankNotNil applies the NotNil predicate on the "rank" field.
func RankNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldRank))
}

// BibEQ applies the EQ predicate on the "bib" field.
func BibEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldBib, v))
}

// BibNEQ applies the NEQ predicate on the "bib" field.
func BibNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldBib, v))
}

// BibIn applies the In predicate on the "bib" field.
func BibIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldBib, vs...))
}

// BibNotIn applies the NotIn predicate on the "bib" field.
func BibNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldBib, vs...))
}

// BibGT applies the GT predicate on the "bib" field.
func BibGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldBib, v))
}

// BibGTE applies the GTE predicate on the "bib" field.
func BibGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldBib, v))
}

// BibLT applies the LT predicate on the "bib" field.
func BibLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldBib, v))
}

// BibLTE applies the LTE predicate on the "bib" field.
func BibLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldBib, v))
}

// BibContains applies the Contains predicate on the "bib" field.
func BibContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldBib, v))
}

// BibHasPrefix applies the HasPrefix predicate on the "bib" field.
func BibHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldBib, v))
}

// BibHasSuffix applies the HasSuffix predicate on the "bib" field.
func BibHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldBib, v))
}

// BibIsNil applies the IsNil predicate on the "bib" field.
func BibIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldBib))
}

// BibNotNil applies the NotNil predicate on the "bib" field.
func BibNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldBib))
}

// BibEqualFold applies the EqualFold predicate on the "bib" field.
func BibEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldBib, v))
}

// BibContainsFold applies the ContainsFold predicate on the "bib" field.
func BibContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldBib, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldName, v))
}

// NamePinyinEQ applies the EQ predicate on the "name_pinyin" field.
func NamePinyinEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldNamePinyin, v))
}

// NamePinyinNEQ applies the NEQ predicate on the "name_pinyin" field.
func NamePinyinNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldNamePinyin, v))
}

// NamePinyinIn applies the In predicate on the "name_pinyin" field.
func NamePinyinIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldNamePinyin, vs...))
}

// NamePinyinNotIn applies the NotIn predicate on the "name_pinyin" field.
func NamePinyinNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldNamePinyin, vs...))
}

// NamePinyinGT applies the GT predicate on the "name_pinyin" field.
func NamePinyinGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldNamePinyin, v))
}

// NamePinyinGTE applies the GTE predicate on the "name_pinyin" field.
func NamePinyinGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldNamePinyin, v))
}

// NamePinyinLT applies the LT predicate on the "name_pinyin" field.
func NamePinyinLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldNamePinyin, v))
}

// NamePinyinLTE applies the LTE predicate on the "name_pinyin" field.
func NamePinyinLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldNamePinyin, v))
}

// NamePinyinContains applies the Contains predicate on the "name_pinyin" field.
func NamePinyinContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldNamePinyin, v))
}

// NamePinyinHasPrefix applies the HasPrefix predicate on the "name_pinyin" field.
func NamePinyinHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldNamePinyin, v))
}

// NamePinyinHasSuffix applies the HasSuffix predicate on the "name_pinyin" field.
func NamePinyinHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldNamePinyin, v))
}

// NamePinyinIsNil applies the IsNil predicate on the "name_pinyin" field.
func NamePinyinIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldNamePinyin))
}

// NamePinyinNotNil applies the NotNil predicate on the "name_pinyin" field.
func NamePinyinNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldNamePinyin))
}

// NamePinyinEqualFold applies the EqualFold predicate on the "name_pinyin" field.
func NamePinyinEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldNamePinyin, v))
}

// NamePinyinContainsFold applies the ContainsFold predicate on the "name_pinyin" field.
func NamePinyinContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldNamePinyin, v))
}

// TeamEQ applies the EQ predicate on the "team" field.
func TeamEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTeam, v))
}

// TeamNEQ applies the NEQ predicate on the "team" field.
func TeamNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldTeam, v))
}

// TeamIn applies the In predicate on the "team" field.
func TeamIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldTeam, vs...))
}

// TeamNotIn applies the NotIn predicate on the "team" field.
func TeamNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldTeam, vs...))
}

// TeamGT applies the GT predicate on the "team" field.
func TeamGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldTeam, v))
}

// TeamGTE applies the GTE predicate on the "team" field.
func TeamGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldTeam, v))
}

// TeamLT applies the LT predicate on the "team" field.
func TeamLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldTeam, v))
}

// TeamLTE applies the LTE predicate on the "team" field.
func TeamLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldTeam, v))
}

// TeamContains applies the Contains predicate on the "team" field.
func TeamContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldTeam, v))
}

// TeamHasPrefix applies the HasPrefix predicate on the "team" field.
func TeamHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldTeam, v))
}

// TeamHasSuffix applies the HasSuffix predicate on the "team" field.
func TeamHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldTeam, v))
}

// TeamIsNil applies the IsNil predicate on the "team" field.
func TeamIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldTeam))
}

// TeamNotNil applies the NotNil predicate on the "team" field.
func TeamNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldTeam))
}

// TeamEqualFold applies the EqualFold predicate on the "team" field.
func TeamEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldTeam, v))
}

// TeamContainsFold applies the ContainsFold predicate on the "team" field.
func TeamContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldTeam, v))
}

// Run1TimeEQ applies the EQ predicate on the "run1_time" field.
func Run1TimeEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun1Time, v))
}

// Run1TimeNEQ applies the NEQ predicate on the "run1_time" field.
func Run1TimeNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldRun1Time, v))
}

// Run1TimeIn applies the In predicate on the "run1_time" field.
func Run1TimeIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldRun1Time, vs...))
}

// Run1TimeNotIn applies the NotIn predicate on the "run1_time" field.
func Run1TimeNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldRun1Time, vs...))
}

// Run1TimeGT applies the GT predicate on the "run1_time" field.
func Run1TimeGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldRun1Time, v))
}

// Run1TimeGTE applies the GTE predicate on the "run1_time" field.
func Run1TimeGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldRun1Time, v))
}

// Run1TimeLT applies the LT predicate on the "run1_time" field.
func Run1TimeLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldRun1Time, v))
}

// Run1TimeLTE applies the LTE predicate on the "run1_time" field.
func Run1TimeLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldRun1Time, v))
}

// Run1TimeContains applies the Contains predicate on the "run1_time" field.
func Run1TimeContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldRun1Time, v))
}

// Run1TimeHasPrefix applies the HasPrefix predicate on the "run1_time" field.
func Run1TimeHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldRun1Time, v))
}

// Run1TimeHasSuffix applies the HasSuffix predicate on the "run1_time" field.
func Run1TimeHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldRun1Time, v))
}

// Run1TimeIsNil applies the IsNil predicate on the "run1_time" field.
func Run1TimeIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldRun1Time))
}

// Run1TimeNotNil applies the NotNil predicate on the "run1_time" field.
func Run1TimeNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldRun1Time))
}

// Run1TimeEqualFold applies the EqualFold predicate on the "run1_time" field.
func Run1TimeEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldRun1Time, v))
}

// Run1TimeContainsFold applies the ContainsFold predicate on the "run1_time" field.
func Run1TimeContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldRun1Time, v))
}

// Run2TimeEQ applies the EQ predicate on the "run2_time" field.
func Run2TimeEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun2Time, v))
}

// Run2TimeNEQ applies the NEQ predicate on the "run2_time" field.
func Run2TimeNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldRun2Time, v))
}

// Run2TimeIn applies the In predicate on the "run2_time" field.
func Run2TimeIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldRun2Time, vs...))
}

// Run2TimeNotIn applies the NotIn predicate on the "run2_time" field.
func Run2TimeNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldRun2Time, vs...))
}

// Run2TimeGT applies the GT predicate on the "run2_time" field.
func Run2TimeGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldRun2Time, v))
}

// Run2TimeGTE applies the GTE predicate on the "run2_time" field.
func Run2TimeGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldRun2Time, v))
}

// Run2TimeLT applies the LT predicate on the "run2_time" field.
func Run2TimeLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldRun2Time, v))
}

// Run2TimeLTE applies the LTE predicate on the "run2_time" field.
func Run2TimeLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldRun2Time, v))
}

// Run2TimeContains applies the Contains predicate on the "run2_time" field.
func Run2TimeContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldRun2Time, v))
}

// Run2TimeHasPrefix applies the HasPrefix predicate on the "run2_time" field.
func Run2TimeHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldRun2Time, v))
}

// Run2TimeHasSuffix applies the HasSuffix predicate on the "run2_time" field.
func Run2TimeHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldRun2Time, v))
}

// Run2TimeIsNil applies the IsNil predicate on the "run2_time" field.
func Run2TimeIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldRun2Time))
}

// Run2TimeNotNil applies the NotNil predicate on the "run2_time" field.
func Run2TimeNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldRun2Time))
}

// Run2TimeEqualFold applies the EqualFold predicate on the "run2_time" field.
func Run2TimeEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldRun2Time, v))
}

// Run2TimeContainsFold applies the ContainsFold predicate on the "run2_time" field.
func Run2TimeContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldRun2Time, v))
}

// TotalTimeEQ applies the EQ predicate on the "total_time" field.
func TotalTimeEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTotalTime, v))
}

// TotalTimeNEQ applies the NEQ predicate on the "total_time" field.
func TotalTimeNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldTotalTime, v))
}

// TotalTimeIn applies the In predicate on the "total_time" field.
func TotalTimeIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldTotalTime, vs...))
}

// TotalTimeNotIn applies the NotIn predicate on the "total_time" field.
func TotalTimeNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldTotalTime, vs...))
}

// TotalTimeGT applies the GT predicate on the "total_time" field.
func TotalTimeGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldTotalTime, v))
}

// TotalTimeGTE applies the GTE predicate on the "total_time" field.
func TotalTimeGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldTotalTime, v))
}

// TotalTimeLT applies the LT predicate on the "total_time" field.
func TotalTimeLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldTotalTime, v))
}

// TotalTimeLTE applies the LTE predicate on the "total_time" field.
func TotalTimeLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldTotalTime, v))
}

// TotalTimeContains applies the Contains predicate on the "total_time" field.
func TotalTimeContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldTotalTime, v))
}

// TotalTimeHasPrefix applies the HasPrefix predicate on the "total_time" field.
func TotalTimeHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldTotalTime, v))
}

// TotalTimeHasSuffix applies the HasSuffix predicate on the "total_time" field.
func TotalTimeHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldTotalTime, v))
}

// TotalTimeIsNil applies the IsNil predicate on the "total_time" field.
func TotalTimeIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldTotalTime))
}

// TotalTimeNotNil applies the NotNil predicate on the "total_time" field.
func TotalTimeNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldTotalTime))
}

// TotalTimeEqualFold applies the EqualFold predicate on the "total_time" field.
func TotalTimeEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldTotalTime, v))
}

// TotalTimeContainsFold applies the ContainsFold predicate on the "total_time" field.
func TotalTimeContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldTotalTime, v))
}

// TimeDiffEQ applies the EQ predicate on the "time_diff" field.
func TimeDiffEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTimeDiff, v))
}

// TimeDiffNEQ applies the NEQ predicate on the "time_diff" field.
func TimeDiffNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldTimeDiff, v))
}

// TimeDiffIn applies the In predicate on the "time_diff" field.
func TimeDiffIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldTimeDiff, vs...))
}

// TimeDiffNotIn applies the NotIn predicate on the "time_diff" field.
func TimeDiffNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldTimeDiff, vs...))
}

// TimeDiffGT applies the GT predicate on the "time_diff" field.
func TimeDiffGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldTimeDiff, v))
}

// TimeDiffGTE applies the GTE predicate on the "time_diff" field.
func TimeDiffGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldTimeDiff, v))
}

// TimeDiffLT applies the LT predicate on the "time_diff" field.
func TimeDiffLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldTimeDiff, v))
}

// TimeDiffLTE applies the LTE predicate on the "time_diff" field.
func TimeDiffLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldTimeDiff, v))
}

// TimeDiffContains applies the Contains predicate on the "time_diff" field.
func TimeDiffContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldTimeDiff, v))
}

// TimeDiffHasPrefix applies the HasPrefix predicate on the "time_diff" field.
func TimeDiffHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldTimeDiff, v))
}

// TimeDiffHasSuffix applies the HasSuffix predicate on the "time_diff" field.
func TimeDiffHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldTimeDiff, v))
}

// TimeDiffIsNil applies the IsNil predicate on the "time_diff" field.
func TimeDiffIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldTimeDiff))
}

// TimeDiffNotNil applies the NotNil predicate on the "time_diff" field.
func TimeDiffNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldTimeDiff))
}

// TimeDiffEqualFold applies the EqualFold predicate on the "time_diff" field.
func TimeDiffEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldTimeDiff, v))
}

// TimeDiffContainsFold applies the ContainsFold predicate on the "time_diff" field.
func TimeDiffContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldTimeDiff, v))
}

// Run1SecondsEQ applies the EQ predicate on the "run1_seconds" field.
func Run1SecondsEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun1Seconds, v))
}

// Run1SecondsNEQ applies the NEQ predicate on the "run1_seconds" field.
func Run1SecondsNEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldRun1Seconds, v))
}

// Run1SecondsIn applies the In predicate on the "run1_seconds" field.
func Run1SecondsIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldRun1Seconds, vs...))
}

// Run1SecondsNotIn applies the NotIn predicate on the "run1_seconds" field.
func Run1SecondsNotIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldRun1Seconds, vs...))
}

// Run1SecondsGT applies the GT predicate on the "run1_seconds" field.
func Run1SecondsGT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldRun1Seconds, v))
}

// Run1SecondsGTE applies the GTE predicate on the "run1_seconds" field.
func Run1SecondsGTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldRun1Seconds, v))
}

// Run1SecondsLT applies the LT predicate on the "run1_seconds" field.
func Run1SecondsLT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldRun1Seconds, v))
}

// Run1SecondsLTE applies the LTE predicate on the "run1_seconds" field.
func Run1SecondsLTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldRun1Seconds, v))
}

// Run1SecondsIsNil applies the IsNil predicate on the "run1_seconds" field.
func Run1SecondsIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldRun1Seconds))
}

// Run1SecondsNotNil applies the NotNil predicate on the "run1_seconds" field.
func Run1SecondsNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldRun1Seconds))
}

// Run2SecondsEQ applies the EQ predicate on the "run2_seconds" field.
func Run2SecondsEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldRun2Seconds, v))
}

// Run2SecondsNEQ applies the NEQ predicate on the "run2_seconds" field.
func Run2SecondsNEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldRun2Seconds, v))
}

// Run2SecondsIn applies the In predicate on the "run2_seconds" field.
func Run2SecondsIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldRun2Seconds, vs...))
}

// Run2SecondsNotIn applies the NotIn predicate on the "run2_seconds" field.
func Run2SecondsNotIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldRun2Seconds, vs...))
}

// Run2SecondsGT applies the GT predicate on the "run2_seconds" field.
func Run2SecondsGT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldRun2Seconds, v))
}

// Run2SecondsGTE applies the GTE predicate on the "run2_seconds" field.
func Run2SecondsGTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldRun2Seconds, v))
}

// Run2SecondsLT applies the LT predicate on the "run2_seconds" field.
func Run2SecondsLT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldRun2Seconds, v))
}

// Run2SecondsLTE applies the LTE predicate on the "run2_seconds" field.
func Run2SecondsLTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldRun2Seconds, v))
}

// Run2SecondsIsNil applies the IsNil predicate on the "run2_seconds" field.
func Run2SecondsIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldRun2Seconds))
}

// Run2SecondsNotNil applies the NotNil predicate on the "run2_seconds" field.
func Run2SecondsNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldRun2Seconds))
}

// TotalSecondsEQ applies the EQ predicate on the "total_seconds" field.
func TotalSecondsEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldTotalSeconds, v))
}

// TotalSecondsNEQ applies the NEQ predicate on the "total_seconds" field.
func TotalSecondsNEQ(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldTotalSeconds, v))
}

// TotalSecondsIn applies the In predicate on the "total_seconds" field.
func TotalSecondsIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldTotalSeconds, vs...))
}

// TotalSecondsNotIn applies the NotIn predicate on the "total_seconds" field.
func TotalSecondsNotIn(vs ...float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldTotalSeconds, vs...))
}

// TotalSecondsGT applies the GT predicate on the "total_seconds" field.
func TotalSecondsGT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldTotalSeconds, v))
}

// TotalSecondsGTE applies the GTE predicate on the "total_seconds" field.
func TotalSecondsGTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldTotalSeconds, v))
}

// TotalSecondsLT applies the LT predicate on the "total_seconds" field.
func TotalSecondsLT(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldTotalSeconds, v))
}

// TotalSecondsLTE applies the LTE predicate on the "total_seconds" field.
func TotalSecondsLTE(v float64) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldTotalSeconds, v))
}

// TotalSecondsIsNil applies the IsNil predicate on the "total_seconds" field.
func TotalSecondsIsNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIsNull(FieldTotalSeconds))
}

// TotalSecondsNotNil applies the NotNil predicate on the "total_seconds" field.
func TotalSecondsNotNil() predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotNull(FieldTotalSeconds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.RaceResult {
	return predicate.RaceResult(sql.FieldContainsFold(FieldStatus, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.RaceResult {
	return predicate.RaceResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.RaceResult {
	return predicate.RaceResult(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RaceResult) predicate.RaceResult {
	return predicate.RaceResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RaceResult) predicate.RaceResult {
	return predicate.RaceResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RaceResult) predicate.RaceResult {
	return predicate.RaceResult(sql.NotPredicates(p))
}
