package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var seededTables = []string{"cities", "companies", "company_objects", "check_types", "templates", "company_inspectors"}

// SeedReferenceData наполняет справочники демо-данными. Повторный запуск ничего не меняет.
func SeedReferenceData(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("▶️  Запуск наполнения справочников...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	steps := []struct {
		name string
		run  func(ctx context.Context, tx pgx.Tx) error
	}{
		{"cities", seedCities},
		{"companies", seedCompanies},
		{"company_objects", seedObjects},
		{"check_types", seedCheckTypes},
		{"templates", seedTemplates},
		{"company_inspectors", seedInspectors},
	}
	for _, step := range steps {
		log.Printf("  - Наполнение таблицы '%s'...", step.name)
		if err := step.run(ctx, tx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	// Явные id не двигают последовательности.
	for _, table := range seededTables {
		query := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %[1]s))", table)
		if _, err := tx.Exec(ctx, query); err != nil {
			return fmt.Errorf("setval %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Println("✅ Наполнение справочников завершено!")
	return nil
}

func seedCities(ctx context.Context, tx pgx.Tx) error {
	for _, c := range citiesData {
		if _, err := tx.Exec(ctx, `INSERT INTO cities (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, c.ID, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedCompanies(ctx context.Context, tx pgx.Tx) error {
	for _, c := range companiesData {
		if _, err := tx.Exec(ctx, `INSERT INTO companies (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, c.ID, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedObjects(ctx context.Context, tx pgx.Tx) error {
	query := `INSERT INTO company_objects (id, company_id, city_id, name, address)
			  VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`
	for _, o := range objectsData {
		if _, err := tx.Exec(ctx, query, o.ID, o.CompanyID, o.CityID, o.Name, o.Address); err != nil {
			return err
		}
	}
	return nil
}

func seedCheckTypes(ctx context.Context, tx pgx.Tx) error {
	for _, t := range checkTypesData {
		if _, err := tx.Exec(ctx, `INSERT INTO check_types (id, company_id, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`, t.ID, t.CompanyID, t.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedTemplates(ctx context.Context, tx pgx.Tx) error {
	query := `INSERT INTO templates (id, company_id, check_type_id, name)
			  VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
	for _, t := range templatesData {
		if _, err := tx.Exec(ctx, query, t.ID, t.CompanyID, t.CheckTypeID, t.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedInspectors(ctx context.Context, tx pgx.Tx) error {
	query := `INSERT INTO company_inspectors (id, company_id, first_name, last_name, email, status)
			  VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`
	for _, i := range inspectorsData {
		if _, err := tx.Exec(ctx, query, i.ID, i.CompanyID, i.FirstName, i.LastName, i.Email, i.Status); err != nil {
			return err
		}
	}
	return nil
}
