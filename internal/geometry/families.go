package geometry

// Family binds a shape kind to its builder and parameter metadata.
type Family struct {
	Kind     ShapeKind
	Build    BuildFunc
	Defaults Params
	Ranges   []ParamRange
}

// Families returns the supported shape families in stable order.
func Families() []Family {
	return []Family{
		{Kind: KindSolid, Build: BuildSolid, Defaults: DefaultParams(KindSolid), Ranges: Ranges(KindSolid)},
		{Kind: KindHollow, Build: BuildHollow, Defaults: DefaultParams(KindHollow), Ranges: Ranges(KindHollow)},
	}
}

// FamilyFor looks up the family for a kind.
func FamilyFor(kind ShapeKind) (Family, bool) {
	for _, f := range Families() {
		if f.Kind == kind {
			return f, true
		}
	}
	return Family{}, false
}
