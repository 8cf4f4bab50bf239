package models

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Maintenance tooling, run from main when the matching flag is set:

	GENERATE_MODELS=true         migrates, then writes typed query helpers
	                             for every catalog table to GENERATED_QUERY_PATH.
	GENERATE_COLUMN_REPORT=true  lists columns present in the database that no
	                             model field maps to, then exits.

Example report output:

	WRN unmapped columns table=examples columns=["legacy_rank"]
	INF all columns accounted for table=categories
	INF column report complete mismatched=1
*/

// GenerateModels writes gorm/gen query helpers for the catalog models.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("checking database before generation: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	log.Info().Str("outPath", outPath).Msg("generating query helpers")
	g.Execute()
	return nil
}

// ColumnReport describes one table's drift from its model.
type ColumnReport struct {
	Table    string
	Missing  bool     // table does not exist yet
	Unmapped []string // columns with no model field
}

// ColumnMismatchReport compares live table columns against the model schema.
// It goes through the gorm migrator so it works on every supported dialect.
func ColumnMismatchReport(db *gorm.DB) ([]ColumnReport, error) {
	reports := make([]ColumnReport, 0, len(All()))
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}
		report := ColumnReport{Table: stmt.Schema.Table}

		if !db.Migrator().HasTable(model) {
			report.Missing = true
			reports = append(reports, report)
			continue
		}

		columns, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("reading columns for table %s: %w", report.Table, err)
		}

		known := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			known[name] = true
		}
		for _, col := range columns {
			if !known[col.Name()] {
				report.Unmapped = append(report.Unmapped, col.Name())
			}
		}
		sort.Strings(report.Unmapped)
		reports = append(reports, report)
	}
	return reports, nil
}

// LogColumnReport writes the report through the global logger and returns
// the total number of unmapped columns.
func LogColumnReport(reports []ColumnReport) int {
	total := 0
	for _, r := range reports {
		switch {
		case r.Missing:
			log.Warn().Str("table", r.Table).Msg("table does not exist yet, it will be created by migration")
		case len(r.Unmapped) > 0:
			log.Warn().Str("table", r.Table).Strs("columns", r.Unmapped).Msg("unmapped columns")
			total += len(r.Unmapped)
		default:
			log.Info().Str("table", r.Table).Msg("all columns accounted for")
		}
	}
	log.Info().Int("mismatched", total).Msg("column report complete")
	return total
}
