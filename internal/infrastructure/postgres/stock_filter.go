package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// defaultSortKey orden por defecto: actualización más reciente primero.
const defaultSortKey = "updated_desc"

// sortClauses es la lista cerrada de órdenes aceptados. Columna y dirección
// salen únicamente de este mapa; la clave que llega del cliente jamás se
// inserta en el SQL. Una clave desconocida cae silenciosamente al default.
var sortClauses = map[string]string{
	"updated_desc": "s.updated_at DESC",
	"updated_asc":  "s.updated_at ASC",
	"kilos_desc":   "s.kilos DESC",
	"kilos_asc":    "s.kilos ASC",
	"name_asc":     "ct.name ASC",
	"name_desc":    "ct.name DESC",
	"location_asc": "u.location ASC",
}

// orderByClause resuelve la clave de orden contra la lista permitida.
func orderByClause(sortKey string) string {
	if clause, ok := sortClauses[sortKey]; ok {
		return "ORDER BY " + clause
	}
	return "ORDER BY " + sortClauses[defaultSortKey]
}

// stockPredicate arma el WHERE parametrizado del listado de stock a partir de
// los criterios del llamador. Invariante duro de seguridad: todos los valores
// viajan como parámetros posicionales ($n); el texto SQL solo se compone de
// fragmentos fijos de esta función.
//
// Alcances:
//   - público: siempre kilos > 0
//   - vendedor: filas propias (incluidas las de kilos 0, que administra aquí)
//   - admin: kilos > 0 salvo IncludeZero
func stockPredicate(f repository.StockFilter) (string, []any) {
	var conds []string
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch f.Scope {
	case repository.ScopeSeller:
		conds = append(conds, "s.seller_id = "+next(f.SellerID))
	case repository.ScopeAdmin:
		if !f.IncludeZero {
			conds = append(conds, "s.kilos > 0")
		}
		if f.SellerID != "" {
			conds = append(conds, "s.seller_id = "+next(f.SellerID))
		}
	default: // ScopePublic
		conds = append(conds, "s.kilos > 0")
	}

	if f.CoffeeTypeID != "" {
		conds = append(conds, "s.coffee_type_id = "+next(f.CoffeeTypeID))
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(ct.name ILIKE %s OR u.name ILIKE %s OR u.location ILIKE %s)", p, p, p))
	}
	if f.Location != "" {
		conds = append(conds, "u.location ILIKE "+next("%"+f.Location+"%"))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
