package saar

import (
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"
	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite"
)

// Load reads an atlas from its SQLite distribution file. The file
// carries three tables: axis(name, idx, value) with the lon, lat and p
// axes; anomaly(level, lat, lon, dsa) with one row per wet grid cell;
// and ndepth(lat, lon, n) with the deepest valid level per column.
// Dry cells are simply absent and come back as NaN.
func Load(path string) (*Atlas, error) {
	db, err := sqlx.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer db.Close()

	axes := map[string][]float64{}
	for _, name := range []string{"lon", "lat", "p"} {
		var vals []float64
		err := db.Select(&vals,
			`SELECT value FROM axis WHERE name = ? ORDER BY idx`, name)
		if err != nil {
			return nil, fmt.Errorf("read %s axis: %w", name, err)
		}
		if len(vals) < 2 {
			return nil, fmt.Errorf("read %s axis: %d points", name, len(vals))
		}
		axes[name] = vals
	}
	nlon, nlat, np := len(axes["lon"]), len(axes["lat"]), len(axes["p"])

	levels := make([]*mat.Dense, np)
	for k := range levels {
		levels[k] = nanDense(nlat, nlon)
	}
	rows, err := db.Queryx(`SELECT level, lat, lon, dsa FROM anomaly`)
	if err != nil {
		return nil, fmt.Errorf("read anomaly: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, i, j int
		var dsa float64
		if err := rows.Scan(&k, &i, &j, &dsa); err != nil {
			return nil, fmt.Errorf("scan anomaly: %w", err)
		}
		if k < 0 || k >= np || i < 0 || i >= nlat || j < 0 || j >= nlon {
			return nil, fmt.Errorf("anomaly cell (%d,%d,%d) outside %dx%dx%d grid",
				k, i, j, np, nlat, nlon)
		}
		levels[k].Set(i, j, dsa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read anomaly: %w", err)
	}

	ndepth := nanDense(nlat, nlon)
	drows, err := db.Queryx(`SELECT lat, lon, n FROM ndepth`)
	if err != nil {
		return nil, fmt.Errorf("read ndepth: %w", err)
	}
	defer drows.Close()
	for drows.Next() {
		var i, j, n int
		if err := drows.Scan(&i, &j, &n); err != nil {
			return nil, fmt.Errorf("scan ndepth: %w", err)
		}
		if i < 0 || i >= nlat || j < 0 || j >= nlon {
			return nil, fmt.Errorf("ndepth cell (%d,%d) outside %dx%d grid",
				i, j, nlat, nlon)
		}
		ndepth.Set(i, j, float64(n))
	}
	if err := drows.Err(); err != nil {
		return nil, fmt.Errorf("read ndepth: %w", err)
	}

	return New(axes["lon"], axes["lat"], axes["p"], levels, ndepth)
}

func nanDense(r, c int) *mat.Dense {
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(i, j, math.NaN())
		}
	}
	return d
}
