package domain

type WidgetKind string

const (
	WidgetSlider WidgetKind = "slider"
	WidgetSelect WidgetKind = "select"
)

// Widget describes one input control. Sliders use Min/Max/Default,
// selectors use Options and default to the first option.
type Widget struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Kind    WidgetKind `json:"kind"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Default any        `json:"default"`
	Options []string   `json:"options,omitempty"`
}

type FormSchema struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Widgets     []Widget `json:"widgets"`
}

// FormValues holds raw values captured by a UI. Nil fields fall back to widget defaults.
type FormValues struct {
	Carat   *float64
	Cut     *string
	Color   *string
	Clarity *string
	Depth   *float64
	Table   *float64
	X       *float64
	Y       *float64
	Z       *float64
}

// DiamondForm returns the price form in display order.
func DiamondForm() FormSchema {
	return FormSchema{
		Title:       "Diamond Price Prediction App",
		Description: "Enter the diamond characteristics to predict its price.",
		Action:      "Predict Price",
		Widgets: []Widget{
			slider(ColumnCarat, "Carat", 0.2, 5.0, 0.7),
			choice(ColumnCut, "Cut", Cuts),
			choice(ColumnColor, "Color", Colors),
			choice(ColumnClarity, "Clarity", Clarities),
			slider(ColumnDepth, "Depth", 43.0, 79.0, 61.5),
			slider(ColumnTable, "Table", 43.0, 95.0, 55.0),
			slider(ColumnX, "Length (mm)", 0.0, 11.0, 5.7),
			slider(ColumnY, "Width (mm)", 0.0, 11.0, 5.7),
			slider(ColumnZ, "Depth (mm)", 0.0, 7.0, 3.5),
		},
	}
}

// Widget finds a widget by key.
func (s FormSchema) Widget(key string) (Widget, bool) {
	for _, w := range s.Widgets {
		if w.Key == key {
			return w, true
		}
	}
	return Widget{}, false
}

func slider(key, label string, lo, hi, def float64) Widget {
	return Widget{Key: key, Label: label, Kind: WidgetSlider, Min: lo, Max: hi, Default: def}
}

func choice(key, label string, options []string) Widget {
	return Widget{Key: key, Label: label, Kind: WidgetSelect, Default: options[0], Options: options}
}
