package domain

import (
	"bytes"
	"encoding/json"
)

// HealthTag is one of the fixed dietary labels the model may assign.
type HealthTag string

const (
	TagLowCarb     HealthTag = "low_carb"
	TagHighProtein HealthTag = "high_protein"
	TagLowFat      HealthTag = "low_fat"
	TagVegan       HealthTag = "vegan"
	TagVegetarian  HealthTag = "vegetarian"
	TagGlutenFree  HealthTag = "gluten_free"
	TagDairyFree   HealthTag = "dairy_free"
	TagNutFree     HealthTag = "nut_free"
	TagLowSugar    HealthTag = "low_sugar"
	TagHighFiber   HealthTag = "high_fiber"
)

// HealthTags lists the closed tag vocabulary in prompt order.
var HealthTags = []HealthTag{
	TagLowCarb, TagHighProtein, TagLowFat, TagVegan, TagVegetarian,
	TagGlutenFree, TagDairyFree, TagNutFree, TagLowSugar, TagHighFiber,
}

// IsKnown reports whether the tag belongs to the vocabulary.
func (t HealthTag) IsKnown() bool {
	for _, known := range HealthTags {
		if t == known {
			return true
		}
	}
	return false
}

// NotFoodError is the error value the model returns for non-food images.
const NotFoodError = "not_food"

// NutritionReport is the JSON value recovered from the model response.
// It is passed through without schema validation: the model's shape is not guaranteed,
// and consumers decide how strict to be.
type NutritionReport struct {
	Raw json.RawMessage
}

// MarshalJSON emits the recovered value unchanged.
func (r NutritionReport) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

// IsNotFood reports whether the model classified the image as not food.
func (r NutritionReport) IsNotFood() bool {
	var probe struct {
		Error string `json:"error"`
	}
	if !bytes.HasPrefix(bytes.TrimSpace(r.Raw), []byte("{")) {
		return false
	}
	if err := json.Unmarshal(r.Raw, &probe); err != nil {
		return false
	}
	return probe.Error == NotFoodError
}

// FoodItem is a single identified food with its estimated macros.
type FoodItem struct {
	Name        string  `json:"name"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
}

// Macros aggregates energy and macronutrients.
type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// NutritionSummary is a typed view of a report, used for presentation.
type NutritionSummary struct {
	Items      []FoodItem  `json:"items"`
	Totals     Macros      `json:"totals"`
	HealthTags []HealthTag `json:"healthTags"`
}

// Summary decodes the report leniently. Fields the model got wrong are left zero;
// an error is returned only when the value is not an object at all.
func (r NutritionReport) Summary() (*NutritionSummary, error) {
	var loose struct {
		Items      []json.RawMessage `json:"items"`
		Totals     json.RawMessage   `json:"totals"`
		HealthTags json.RawMessage   `json:"healthTags"`
	}
	if err := json.Unmarshal(r.Raw, &loose); err != nil {
		return nil, err
	}

	summary := &NutritionSummary{}
	for _, raw := range loose.Items {
		var item FoodItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		summary.Items = append(summary.Items, item)
	}
	if len(loose.Totals) > 0 {
		_ = json.Unmarshal(loose.Totals, &summary.Totals)
	}
	summary.HealthTags = decodeHealthTags(loose.HealthTags)
	return summary, nil
}

// decodeHealthTags accepts a list of tags or a list of lists, keeping known tags only.
func decodeHealthTags(raw json.RawMessage) []HealthTag {
	if len(raw) == 0 {
		return nil
	}
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	var tags []HealthTag
	seen := make(map[HealthTag]bool)
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case string:
			tag := HealthTag(val)
			if tag.IsKnown() && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		case []any:
			for _, inner := range val {
				walk(inner)
			}
		}
	}
	for _, v := range values {
		walk(v)
	}
	return tags
}
