package mysql

import (
	"context"
	"database/sql"

	"ivy_homes/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// Repo is the production property source: the seeder writes listings in, the
// agent loads the whole table into memory at startup. Insertion order (the
// pos column) is the catalog load order.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.PropertySource = (*Repo)(nil)

// Load implements domain.PropertySource.
func (r *Repo) Load(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, selectPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := []domain.Property{}
	for rows.Next() {
		var (
			p            domain.Property
			typ          sql.NullString
			city         sql.NullString
			neighborhood sql.NullString
			address      sql.NullString
			price        sql.NullFloat64
			bedrooms     sql.NullInt64
			bathrooms    sql.NullInt64
			squareFeet   sql.NullFloat64
			yearBuilt    sql.NullInt64
			description  sql.NullString
		)
		if err := rows.Scan(&p.ID, &typ, &city, &neighborhood, &address,
			&price, &bedrooms, &bathrooms, &squareFeet, &yearBuilt, &description); err != nil {
			return nil, err
		}
		p.Type = nullStr(typ)
		p.City = nullStr(city)
		p.Neighborhood = nullStr(neighborhood)
		p.Address = nullStr(address)
		p.Price = nullF64(price)
		p.Bedrooms = nullInt(bedrooms)
		p.Bathrooms = nullInt(bathrooms)
		p.SquareFeet = nullF64(squareFeet)
		p.YearBuilt = nullInt(yearBuilt)
		p.Description = nullStr(description)
		props = append(props, p)
	}
	return props, rows.Err()
}

// UpsertProperty inserts or refreshes one listing; used by the seeder.
func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	_, err := r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		valStr(p.Type),
		valStr(p.City),
		valStr(p.Neighborhood),
		valStr(p.Address),
		valF64(p.Price),
		valInt(p.Bedrooms),
		valInt(p.Bathrooms),
		valF64(p.SquareFeet),
		valInt(p.YearBuilt),
		valStr(p.Description),
	)
	return err
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullF64(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
