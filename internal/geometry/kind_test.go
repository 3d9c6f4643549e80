package geometry

import (
	"errors"
	"testing"
)

func TestParseShapeKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ShapeKind
		wantErr bool
	}{
		{name: "solid", input: "solid", want: KindSolid},
		{name: "hollow", input: "hollow", want: KindHollow},
		{name: "unknown", input: "torus", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Solid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShapeKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownShapeKind) {
					t.Errorf("error = %v, want ErrUnknownShapeKind", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShapeKind(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseShapeKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindsCoverFamilies(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != len(Families()) {
		t.Fatalf("%d kinds but %d families", len(kinds), len(Families()))
	}
	for _, kind := range kinds {
		f, ok := FamilyFor(kind)
		if !ok {
			t.Errorf("no family for kind %q", kind)
			continue
		}
		if f.Build == nil {
			t.Errorf("family %q has no builder", kind)
		}
		if f.Defaults != DefaultParams(kind) {
			t.Errorf("family %q defaults diverge from DefaultParams", kind)
		}
	}
}

func TestFamilyForUnknown(t *testing.T) {
	if _, ok := FamilyFor(ShapeKind("torus")); ok {
		t.Error("FamilyFor accepted an unknown kind")
	}
}
