package ordertech

// FieldSet is a tracked-field allow-list for one entity type.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from field names.
func NewFieldSet(fields ...string) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Contains reports whether the field is tracked.
func (s FieldSet) Contains(field string) bool {
	_, ok := s[field]
	return ok
}

// ShouldSync reports whether a write touching the given fields must trigger a
// remote sync: true when the intersection with the tracked set is non-empty.
// Field presence in the write is what counts, not an actual value change; a
// write re-setting a field to its current value still triggers.
func ShouldSync(changed []string, tracked FieldSet) bool {
	for _, f := range changed {
		if tracked.Contains(f) {
			return true
		}
	}
	return false
}

// Tracked-field sets per entity type.
var (
	TenantTrackedFields = NewFieldSet(
		"name", "phone", "email", "opening_time", "closing_time",
	)
	BranchTrackedFields = NewFieldSet(
		"name", "phone", "email", "street", "street2", "city", "state_id",
		"zip", "delivery_radius_km", "notes", "opening_time", "closing_time",
	)
	ProductTrackedFields = NewFieldSet(
		"name", "default_code", "image_1920", "pos_categ_ids", "list_price",
		"attribute_line_ids",
	)
	AddonGroupTrackedFields = NewFieldSet(
		"name", "limit_min", "limit_max", "is_required",
	)
	AddonItemTrackedFields = NewFieldSet(
		"name", "default_extra_price",
	)
	CustomerTrackedFields = NewFieldSet(
		"name", "phone", "email",
	)
	CategoryTrackedFields = NewFieldSet(
		"name",
	)
)
