package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	columns := columnDefs(model)
	for i := range columns {
		columns[i] = "    " + columns[i]
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

func columnDefs(model any) []string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			res = append(res, fmt.Sprintf("%s %s", dbTag, ddlTag))
		}
	}
	return res
}

// Columns returns column names of a model in the order of its fields.
func Columns(model any) []string {
	defs := columnDefs(model)
	res := make([]string, len(defs))
	for i, v := range defs {
		res[i], _, _ = strings.Cut(v, " ")
	}
	return res
}

// AllModels returns all schema models in the order of their creation.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		OTUMap{},
		SeqData{},
		TaxData{},
		OTUWithSeq{},
		LoadRun{},
	}
}

// TableNames returns names of all tables.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, v := range models {
		res[i] = v.TableName()
	}
	return res
}

// IsTable returns true if the name is one of the otudb tables.
// Only names that pass this check are used in SQL statements.
func IsTable(name string) bool {
	return slices.Contains(TableNames(), name)
}

// Model returns the model of a table.
func Model(table string) (DDLGenerator, bool) {
	for _, v := range AllModels() {
		if v.TableName() == table {
			return v, true
		}
	}
	return nil, false
}

// OTUMap DDL methods
func (m OTUMap) TableDDL() string {
	return generateDDL(m, OTUMapTable)
}

func (m OTUMap) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_otu_map_target ON otu_map(target);",
	}
}

func (m OTUMap) TableName() string {
	return OTUMapTable
}

// SeqData DDL methods
func (s SeqData) TableDDL() string {
	return generateDDL(s, SeqDataTable)
}

func (s SeqData) IndexDDL() []string {
	return []string{}
}

func (s SeqData) TableName() string {
	return SeqDataTable
}

// TaxData DDL methods
func (td TaxData) TableDDL() string {
	return generateDDL(td, TaxDataTable)
}

func (td TaxData) IndexDDL() []string {
	return []string{}
}

func (td TaxData) TableName() string {
	return TaxDataTable
}

// OTUWithSeq DDL methods
func (o OTUWithSeq) TableDDL() string {
	return generateDDL(o, JoinedTable)
}

func (o OTUWithSeq) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_otus_w_seqs_target ON otus_w_seqs(target);",
	}
}

func (o OTUWithSeq) TableName() string {
	return JoinedTable
}

// LoadRun DDL methods
func (lr LoadRun) TableDDL() string {
	return generateDDL(lr, LoadRunsTable)
}

func (lr LoadRun) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_load_runs_input_id ON load_runs(input_id);",
	}
}

func (lr LoadRun) TableName() string {
	return LoadRunsTable
}
