package geodb

import (
	"context"
	"database/sql"
	"strings"
)

// Queries wraps a database handle with typed dataset queries.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// UpsertSmallArea inserts or replaces a small area row.
func (q *Queries) UpsertSmallArea(ctx context.Context, area SmallArea) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO small_areas (id, label, geometry, area_km2)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			geometry = excluded.geometry,
			area_km2 = excluded.area_km2
	`, area.ID, area.Label, area.Geometry, area.AreaKm2)
	return err
}

// ListSmallAreas returns all small areas ordered by id.
func (q *Queries) ListSmallAreas(ctx context.Context) ([]SmallArea, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, label, geometry, area_km2 FROM small_areas ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var areas []SmallArea
	for rows.Next() {
		var area SmallArea
		if err := rows.Scan(&area.ID, &area.Label, &area.Geometry, &area.AreaKm2); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

// GetSmallArea returns a single small area by id.
func (q *Queries) GetSmallArea(ctx context.Context, id string) (SmallArea, error) {
	var area SmallArea
	err := q.db.QueryRowContext(ctx, `
		SELECT id, label, geometry, area_km2 FROM small_areas WHERE id = ?
	`, id).Scan(&area.ID, &area.Label, &area.Geometry, &area.AreaKm2)
	return area, err
}

// CountSmallAreas returns the number of imported small areas.
func (q *Queries) CountSmallAreas(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM small_areas`).Scan(&n)
	return n, err
}

// InsertPopulation loads population rows inside a single transaction.
func (q *Queries) InsertPopulation(ctx context.Context, rows []PopulationRow) error {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO population (area_id, year, age_group, sex, count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(area_id, year, age_group, sex) DO UPDATE SET count = excluded.count
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.AreaID, row.Year, row.AgeGroup, row.Sex, row.Count); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// TotalPopulation sums population counts over the given areas. An empty
// area set yields zero.
func (q *Queries) TotalPopulation(ctx context.Context, areaIDs []string) (int64, error) {
	if len(areaIDs) == 0 {
		return 0, nil
	}

	query := `SELECT COALESCE(SUM(count), 0) FROM population WHERE area_id IN (` +
		placeholders(len(areaIDs)) + `)`

	var total int64
	err := q.db.QueryRowContext(ctx, query, stringArgs(areaIDs)...).Scan(&total)
	return total, err
}

// AgeDistribution aggregates population counts by age group over the given
// areas. An empty area set yields an empty distribution.
func (q *Queries) AgeDistribution(ctx context.Context, areaIDs []string) ([]AgeGroupCount, error) {
	if len(areaIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT age_group, SUM(count) FROM population
		WHERE area_id IN (` + placeholders(len(areaIDs)) + `)
		GROUP BY age_group ORDER BY age_group`

	rows, err := q.db.QueryContext(ctx, query, stringArgs(areaIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var counts []AgeGroupCount
	for rows.Next() {
		var c AgeGroupCount
		if err := rows.Scan(&c.AgeGroup, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// AgeGroupTotal sums the population of one age group across all areas.
func (q *Queries) AgeGroupTotal(ctx context.Context, ageGroup string) (int64, error) {
	var total int64
	err := q.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(count), 0) FROM population WHERE age_group = ?
	`, ageGroup).Scan(&total)
	return total, err
}

// AgeGroupCountForArea sums one age group's population inside one area.
func (q *Queries) AgeGroupCountForArea(ctx context.Context, areaID, ageGroup string) (int64, error) {
	var total int64
	err := q.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(count), 0) FROM population WHERE area_id = ? AND age_group = ?
	`, areaID, ageGroup).Scan(&total)
	return total, err
}

// AreaPopulationTotals returns the total population of every area that has
// population rows.
func (q *Queries) AreaPopulationTotals(ctx context.Context) ([]AreaPopulation, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT area_id, SUM(count) FROM population GROUP BY area_id ORDER BY area_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var totals []AreaPopulation
	for rows.Next() {
		var ap AreaPopulation
		if err := rows.Scan(&ap.AreaID, &ap.Count); err != nil {
			return nil, err
		}
		totals = append(totals, ap)
	}
	return totals, rows.Err()
}

// InsertSchool adds a school location.
func (q *Queries) InsertSchool(ctx context.Context, school School) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO schools (name, lat, lon) VALUES (?, ?, ?)
	`, school.Name, school.Lat, school.Lon)
	return err
}

// ListSchools returns all schools ordered by name.
func (q *Queries) ListSchools(ctx context.Context) ([]School, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, lat, lon FROM schools ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var schools []School
	for rows.Next() {
		var s School
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lon); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

// UpsertStation inserts or replaces a station for a scenario year.
func (q *Queries) UpsertStation(ctx context.Context, station Station) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO stations (year, name, lines, lat, lon)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(year, name) DO UPDATE SET
			lines = excluded.lines,
			lat = excluded.lat,
			lon = excluded.lon
	`, station.Year, station.Name, station.Lines, station.Lat, station.Lon)
	return err
}

// ListStations returns the stations of one scenario year ordered by name.
func (q *Queries) ListStations(ctx context.Context, year string) ([]Station, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT year, name, lines, lat, lon FROM stations WHERE year = ? ORDER BY name
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var stations []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.Year, &s.Name, &s.Lines, &s.Lat, &s.Lon); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// placeholders builds a "?, ?, ?" list of the given length.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func stringArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
