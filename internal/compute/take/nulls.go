package take

import "github.com/harshithgowdakt/colvec/internal/array"

// combinedValid applies the two-source null rule shared by every encoding:
// a gathered row is valid only when its index slot is valid and the source
// row it references is valid.
func combinedValid(indexValid, sourceValid bool) bool {
	return indexValid && sourceValid
}

// needsValidity reports whether the output must carry a validity bitmap.
// It is omitted only when neither the source nor the index column has one.
func needsValidity(src, indices array.Array) bool {
	return src.Validity() != nil || indices.Validity() != nil
}
