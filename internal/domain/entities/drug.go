// Package entities contains domain entities used across the application.
package entities

// DrugRecord pairs a drug's brand name with its generic equivalent.
// Records are read-only after loading.
type DrugRecord struct {
	Brand   string `json:"brand"`   // marketed brand name (e.g. Lipitor)
	Generic string `json:"generic"` // generic compound name (e.g. atorvastatin)
}

// Field identifies one side of a drug record.
type Field string

const (
	FieldBrand   Field = "brand"
	FieldGeneric Field = "generic"
)

// Value returns the record's value for the given field.
func (r DrugRecord) Value(f Field) string {
	if f == FieldBrand {
		return r.Brand
	}
	return r.Generic
}

// Direction describes which name type is given as the prompt and which is
// requested as the answer.
type Direction string

const (
	DirectionBrandToGeneric Direction = "brand_to_generic"
	DirectionGenericToBrand Direction = "generic_to_brand"
)

// Fields returns the prompt field and the answer field for the direction.
func (d Direction) Fields() (source, target Field) {
	if d == DirectionGenericToBrand {
		return FieldGeneric, FieldBrand
	}
	return FieldBrand, FieldGeneric
}
