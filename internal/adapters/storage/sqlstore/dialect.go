package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect describe las diferencias entre motores que le importan al repo:
// nombre del driver database/sql y estilo de placeholders.
type Dialect struct {
	Name       string
	DriverName string
	dollar     bool // $1, $2... en vez de ?
}

var (
	SQLite   = Dialect{Name: "sqlite", DriverName: "sqlite"}
	Postgres = Dialect{Name: "postgres", DriverName: "pgx", dollar: true}
	MySQL    = Dialect{Name: "mysql", DriverName: "mysql"}
)

func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("sqlstore: unknown dialect %q", name)
	}
}

// Rebind convierte los ? de una query al placeholder del dialecto.
// Las queries del paquete no usan ? literales.
func (d Dialect) Rebind(query string) string {
	if !d.dollar {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
