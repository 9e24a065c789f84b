package shared

// Save identifies a saving throw
type Save string

const (
	SaveFortitude Save = "fortitude"
	SaveReflex    Save = "reflex"
	SaveWill      Save = "will"
)

// Saves lists the three saving throws
var Saves = []Save{SaveFortitude, SaveReflex, SaveWill}

// ArmorCategory identifies an armor proficiency category
type ArmorCategory string

const (
	ArmorUnarmored ArmorCategory = "unarmored"
	ArmorLight     ArmorCategory = "light"
	ArmorMedium    ArmorCategory = "medium"
	ArmorHeavy     ArmorCategory = "heavy"
)

// ArmorCategories lists armor categories from lightest to heaviest
var ArmorCategories = []ArmorCategory{ArmorUnarmored, ArmorLight, ArmorMedium, ArmorHeavy}

// WeaponCategory identifies a weapon proficiency category
type WeaponCategory string

const (
	WeaponUnarmed  WeaponCategory = "unarmed"
	WeaponSimple   WeaponCategory = "simple"
	WeaponMartial  WeaponCategory = "martial"
	WeaponAdvanced WeaponCategory = "advanced"
)

// WeaponCategories lists all weapon categories
var WeaponCategories = []WeaponCategory{WeaponUnarmed, WeaponSimple, WeaponMartial, WeaponAdvanced}
