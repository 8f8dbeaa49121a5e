package jschema

// ComparisonKind tells a code generator how to compare two values of a
// generated property when emitting equality code.
type ComparisonKind int

const (
	// CompareOperatorEquals compares with the equality operator; used for
	// value-typed scalars.
	CompareOperatorEquals ComparisonKind = iota

	// CompareObjectEquals compares through a general object-equals helper;
	// used for reference-typed scalars such as strings.
	CompareObjectEquals

	// CompareEqualityComparerEquals compares through a dedicated comparer
	// instance; used for generated class types.
	CompareEqualityComparerEquals

	// CompareCollection compares element-wise after a length check.
	CompareCollection

	// CompareDictionary compares by key-set equality plus per-key value
	// equality.
	CompareDictionary
)

// HashKind tells a code generator how to fold a generated property into a
// hash code.
type HashKind int

const (
	HashScalarValueType HashKind = iota
	HashScalarReferenceType
	HashCollection
	HashDictionary
)

// Hash combination constants shared with generated code. Dictionary hashes
// XOR the per-entry hashes so the result is independent of enumeration
// order.
const (
	HashSeed       = 17
	HashMultiplier = 31
)

// CombineHash folds one component hash into an accumulator. Start from
// HashSeed and fold each property hash in declaration order.
func CombineHash(accumulator, component int) int {
	return accumulator*HashMultiplier + component
}

// CombineDictionaryHash builds the commutative hash of a mapping from the
// hashes of its keys and values: each pair is combined seed-and-multiplier
// style, then all pairs are XORed together.
func CombineDictionaryHash(pairs [][2]int) int {
	hash := 0
	for _, pair := range pairs {
		pairHash := CombineHash(CombineHash(HashSeed, pair[0]), pair[1])
		hash ^= pairHash
	}
	return hash
}

// ComparisonKindOf reports how a generated property declared by this
// schema should be compared. A dictionary shape is an object constrained
// only through additionalProperties; any other object shape (including a
// bare reference to a definition) becomes a generated class compared by a
// dedicated comparer.
func ComparisonKindOf(schema *Schema) ComparisonKind {
	if schema == nil {
		return CompareObjectEquals
	}
	if schema.Reference != nil {
		return CompareEqualityComparerEquals
	}
	switch primaryType(schema) {
	case TypeBoolean, TypeInteger, TypeNumber:
		return CompareOperatorEquals
	case TypeString:
		return CompareObjectEquals
	case TypeArray:
		return CompareCollection
	case TypeObject:
		if isDictionaryShape(schema) {
			return CompareDictionary
		}
		return CompareEqualityComparerEquals
	}
	return CompareObjectEquals
}

// HashKindOf reports how a generated property declared by this schema
// contributes to a hash code.
func HashKindOf(schema *Schema) HashKind {
	switch ComparisonKindOf(schema) {
	case CompareOperatorEquals:
		return HashScalarValueType
	case CompareCollection:
		return HashCollection
	case CompareDictionary:
		return HashDictionary
	}
	return HashScalarReferenceType
}

func primaryType(schema *Schema) string {
	if len(schema.Type) == 0 {
		return ""
	}
	return schema.Type[0]
}

func isDictionaryShape(schema *Schema) bool {
	return schema.Properties.Len() == 0 &&
		schema.AdditionalProperties != nil &&
		schema.AdditionalProperties.Schema != nil
}
