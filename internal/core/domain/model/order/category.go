package order

// Category classifies a product by its storage-temperature demands.
// It drives the temperature-requirement component of the priority score.
//
// Unrecognized wire values map to CategoryUnknown, which scores with the
// ambient fallback instead of failing: upstream catalogs add categories
// faster than this service learns about them, and a scoring pass must stay
// total over such data.
type Category int

const (
	// CategoryUnknown represents a category this service does not recognize.
	// It scores with the ambient fallback.
	CategoryUnknown Category = iota

	// CategoryHotFood is freshly prepared food kept at serving temperature.
	CategoryHotFood

	// CategoryFrozen is deep-frozen goods.
	CategoryFrozen

	// CategoryChilled is refrigerated goods.
	CategoryChilled

	// CategoryBeverage is drinks kept cool but not refrigerated.
	CategoryBeverage

	// CategorySnack is ambient shelf goods.
	CategorySnack

	// CategoryDailyGoods is ambient household goods.
	CategoryDailyGoods

	// CategoryMedicine is pharmaceuticals. Ambient storage, but its presence
	// marks an order as fragile.
	CategoryMedicine
)

// temperatureRequirement pairs a component score with the human-readable
// label shown to drivers.
type temperatureRequirement struct {
	score float64
	label string
}

// fallbackTemperatureRequirement applies to unknown categories and matches
// the least demanding ambient entries.
var fallbackTemperatureRequirement = temperatureRequirement{score: 20, label: "ambient"}

// getTemperatureRequirements returns the static category lookup table.
// The table is configuration data, never mutated at runtime.
func getTemperatureRequirements() map[Category]temperatureRequirement {
	return map[Category]temperatureRequirement{
		CategoryHotFood:    {score: 100, label: "hot 60–70°C"},
		CategoryFrozen:     {score: 90, label: "frozen −18°C"},
		CategoryChilled:    {score: 75, label: "chilled 0–4°C"},
		CategoryMedicine:   {score: 60, label: "ambient (medicine)"},
		CategoryBeverage:   {score: 40, label: "cool 15–20°C"},
		CategorySnack:      {score: 20, label: "ambient"},
		CategoryDailyGoods: {score: 20, label: "ambient"},
	}
}

// getCategoryStrings returns the wire representation of each category.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:    "unknown",
		CategoryHotFood:    "hot_food",
		CategoryFrozen:     "frozen",
		CategoryChilled:    "chilled",
		CategoryBeverage:   "beverage",
		CategorySnack:      "snack",
		CategoryDailyGoods: "daily_goods",
		CategoryMedicine:   "medicine",
	}
}

// CategoryFromString parses a wire category value. Unrecognized values map
// to CategoryUnknown rather than an error so that scoring stays total.
func CategoryFromString(s string) Category {
	for category, str := range getCategoryStrings() {
		if str == s {
			return category
		}
	}
	return CategoryUnknown
}

// String returns the wire representation of the category.
// Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// TemperatureScore returns the temperature-requirement component score for
// the category. Unknown categories score the ambient fallback of 20.
func (c Category) TemperatureScore() float64 {
	if req, ok := getTemperatureRequirements()[c]; ok {
		return req.score
	}
	return fallbackTemperatureRequirement.score
}

// TemperatureLabel returns the human-readable storage label for the
// category, e.g. "chilled 0–4°C". Unknown categories report "ambient".
func (c Category) TemperatureLabel() string {
	if req, ok := getTemperatureRequirements()[c]; ok {
		return req.label
	}
	return fallbackTemperatureRequirement.label
}
