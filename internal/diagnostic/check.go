package diagnostic

import (
	"partial-generator/internal/common"
	"partial-generator/schema"
)

// CodeDuplicateRecord reports a record type generated twice into one package.
const CodeDuplicateRecord = "duplicate-record"

// CheckRecord converts the problems of a record schema into diagnostics.
// Variant collisions are escalated to errors: two fields mapping to the same
// variant cannot both be emitted as constants. So is an empty variant, whose
// constant would take the name of the field enum type.
func CheckRecord(rs *schema.RecordSchema) Diagnostics {
	var d Diagnostics

	for _, p := range rs.Problems() {
		if p.Fatal || p.Code == schema.ProblemDuplicateVariant || emptyVariant(rs, p) {
			d.AddError(p.Code, p.Message, rs.Name, p.Field)
		} else {
			d.AddWarning(p.Code, p.Message, rs.Name, p.Field)
		}
	}

	return d
}

func emptyVariant(rs *schema.RecordSchema, p schema.Problem) bool {
	if p.Code != schema.ProblemInvalidVariant {
		return false
	}

	i, ok := rs.Index(p.Field)

	return ok && rs.Fields[i].Variant() == ""
}

// CheckRecords checks every record and also reports record names declared
// more than once in the same package.
func CheckRecords(records []*schema.RecordSchema) Diagnostics {
	var d Diagnostics

	type recordKey struct{ pkg, name string }

	keys := common.Map(records, func(rs *schema.RecordSchema) recordKey {
		return recordKey{rs.PkgPath, rs.Name}
	})

	for _, dup := range common.Duplicates(keys) {
		d.AddError(CodeDuplicateRecord, "record is declared more than once", dup.name, "")
	}

	for _, rs := range records {
		d.Merge(CheckRecord(rs))
	}

	return d
}
