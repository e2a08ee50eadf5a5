package order

import (
	"math/rand"
	"regexp"
	"testing"
)

var handlePattern = regexp.MustCompile(`^[a-z]+[0-9]{3}@gmail\.com$`)

func TestBuild_OrderShape(t *testing.T) {
	synth := NewSynthesizer(rand.New(rand.NewSource(7)), 49.95)

	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		o := synth.Build()
		if !handlePattern.MatchString(o.BuyerHandle) {
			t.Fatalf("unexpected buyer handle %q", o.BuyerHandle)
		}
		if o.UnitCount < 1 || o.UnitCount > 3 {
			t.Fatalf("unit count %d outside {1,2,3}", o.UnitCount)
		}
		if o.Amount != float64(o.UnitCount)*49.95 {
			t.Fatalf("amount %.2f != %d x 49.95", o.Amount, o.UnitCount)
		}
		if len(o.Reference) != 36 {
			t.Fatalf("reference %q is not a uuid", o.Reference)
		}
		if seen[o.Reference] {
			t.Fatalf("reference %q repeated", o.Reference)
		}
		seen[o.Reference] = true
	}
}
