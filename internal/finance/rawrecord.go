package finance

import (
	"strings"

	"github.com/nicoegiaian/finanzas-hogar-backend/internal/apperrors"
)

// RawRecord is a loosely typed key/value bag as delivered by the external
// tabular store. Field names are not guaranteed: the same logical attribute
// may arrive under any of several synonyms, in any casing. Resolution probes
// a fixed priority list per logical field and takes the first non-nil match.
//
// RawRecord is deliberately distinct from the validated model types; nothing
// past the normalization layer should ever touch one.
type RawRecord map[string]any

// Prioritized field-name variants per logical attribute. Matching is
// case-insensitive; order matters.
var (
	ownerAliases    = []string{"owner", "usuario", "user", "member", "responsable", "responsible"}
	categoryAliases = []string{"movement_type", "movementType", "tipo_movimiento", "tipoMovimiento", "type", "tipo", "category", "categoria"}
	periodAliases   = []string{"date", "fecha", "period", "periodo", "mes", "month"}
	amountAliases   = []string{"amount_local", "amountLocal", "monto_ars", "montoARS", "amount", "monto", "total", "valor", "cantidad"}
	idAliases       = []string{"id", "uuid", "record_id", "recordId", "_id"}
)

// ResolveOwner returns the record's responsible-party label, or fallback
// when no owner-like field holds a non-empty value.
func (r RawRecord) ResolveOwner(fallback string) string {
	return r.resolveString(ownerAliases, fallback)
}

// ResolveCategory returns the record's movement-type/category label, or
// fallback when absent.
func (r RawRecord) ResolveCategory(fallback string) string {
	return r.resolveString(categoryAliases, fallback)
}

// ResolvePeriod resolves the record's calendar period from its date-like
// fields. Returns "" when no field yields a valid period.
func (r RawRecord) ResolvePeriod() string {
	for _, key := range periodAliases {
		value, ok := r.lookup(key)
		if !ok {
			continue
		}
		if period := NormalizePeriodValue(value); period != "" {
			return period
		}
	}
	return ""
}

// ResolveAmount resolves the record's local-currency amount through
// ParseAmount. ok=false means the record contributes nothing.
func (r RawRecord) ResolveAmount() (float64, bool) {
	for _, key := range amountAliases {
		value, ok := r.lookup(key)
		if !ok || value == nil {
			continue
		}
		if amount, parsed := ParseAmount(value); parsed {
			return amount, true
		}
	}
	return 0, false
}

// ResolveID returns the record's identifier resolved from the common
// identifier-field variants. A record without any identifier field fails
// with apperrors.ErrMissingIdentifier; guessing one risks mutating the
// wrong record.
func (r RawRecord) ResolveID() (string, error) {
	id := r.resolveString(idAliases, "")
	if id == "" {
		return "", apperrors.ErrMissingIdentifier
	}
	return id, nil
}

func (r RawRecord) resolveString(aliases []string, fallback string) string {
	for _, key := range aliases {
		value, ok := r.lookup(key)
		if !ok {
			continue
		}
		if s, isString := value.(string); isString {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}

func (r RawRecord) lookup(alias string) (any, bool) {
	if value, ok := r[alias]; ok && value != nil {
		return value, true
	}
	for key, value := range r {
		if value != nil && strings.EqualFold(key, alias) {
			return value, true
		}
	}
	return nil, false
}
