package agents

// Trait is a stable personality tag that biases action scoring.
type Trait string

const (
	TraitThickSkinned Trait = "thick-skinned"
	TraitSensitive    Trait = "sensitive"
	TraitGrinder      Trait = "grinder"
	TraitShy          Trait = "shy"
	TraitSincere      Trait = "sincere"
	TraitScheming     Trait = "scheming"
	TraitAmbitious    Trait = "ambitious"
	TraitMaterialist  Trait = "materialist"
	TraitFrugal       Trait = "frugal"
	TraitRational     Trait = "rational"
	TraitEmotional    Trait = "emotional"
	TraitFlirtatious  Trait = "flirtatious"
	TraitGluttonous   Trait = "gluttonous"
	TraitIrritable    Trait = "irritable"
	TraitGossipy      Trait = "gossipy"
)

// TraitPool is the set generic employees draw from.
var TraitPool = []Trait{
	TraitThickSkinned, TraitSensitive, TraitGrinder, TraitShy, TraitSincere,
	TraitScheming, TraitAmbitious, TraitMaterialist, TraitFrugal, TraitRational,
	TraitEmotional, TraitFlirtatious, TraitGluttonous, TraitIrritable,
}

// Has reports whether the character carries trait t.
func (c *Character) Has(t Trait) bool {
	for _, own := range c.Traits {
		if own == t {
			return true
		}
	}
	return false
}
