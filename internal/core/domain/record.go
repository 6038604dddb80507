package domain

import "strconv"

type Cut string

const (
	CutFair     Cut = "Fair"
	CutGood     Cut = "Good"
	CutVeryGood Cut = "Very Good"
	CutPremium  Cut = "Premium"
	CutIdeal    Cut = "Ideal"
)

type Color string

const (
	ColorJ Color = "J"
	ColorI Color = "I"
	ColorH Color = "H"
	ColorG Color = "G"
	ColorF Color = "F"
	ColorE Color = "E"
	ColorD Color = "D"
)

type Clarity string

const (
	ClarityI1   Clarity = "I1"
	ClaritySI2  Clarity = "SI2"
	ClaritySI1  Clarity = "SI1"
	ClarityVS2  Clarity = "VS2"
	ClarityVS1  Clarity = "VS1"
	ClarityVVS2 Clarity = "VVS2"
	ClarityVVS1 Clarity = "VVS1"
	ClarityIF   Clarity = "IF"
)

// Option lists in display order, worst grade first.
var (
	Cuts      = []string{string(CutFair), string(CutGood), string(CutVeryGood), string(CutPremium), string(CutIdeal)}
	Colors    = []string{string(ColorJ), string(ColorI), string(ColorH), string(ColorG), string(ColorF), string(ColorE), string(ColorD)}
	Clarities = []string{string(ClarityI1), string(ClaritySI2), string(ClaritySI1), string(ClarityVS2), string(ClarityVS1), string(ClarityVVS2), string(ClarityVVS1), string(ClarityIF)}
)

// Record column names, in the order the pipeline was trained on.
const (
	ColumnCarat   = "carat"
	ColumnCut     = "cut"
	ColumnColor   = "color"
	ColumnClarity = "clarity"
	ColumnDepth   = "depth"
	ColumnTable   = "table"
	ColumnX       = "x"
	ColumnY       = "y"
	ColumnZ       = "z"
)

var recordColumns = []string{
	ColumnCarat, ColumnCut, ColumnColor, ColumnClarity,
	ColumnDepth, ColumnTable, ColumnX, ColumnY, ColumnZ,
}

// PredictionRecord is the single-row input handed to an Artifact.
// It is a value type; build one per request and drop it afterwards.
type PredictionRecord struct {
	Carat   float64
	Cut     Cut
	Color   Color
	Clarity Clarity
	Depth   float64
	Table   float64
	X       float64
	Y       float64
	Z       float64
}

// Columns returns the record's column names in schema order.
func (PredictionRecord) Columns() []string {
	out := make([]string, len(recordColumns))
	copy(out, recordColumns)
	return out
}

// Numeric looks up a numeric column by name.
func (r PredictionRecord) Numeric(column string) (float64, bool) {
	switch column {
	case ColumnCarat:
		return r.Carat, true
	case ColumnDepth:
		return r.Depth, true
	case ColumnTable:
		return r.Table, true
	case ColumnX:
		return r.X, true
	case ColumnY:
		return r.Y, true
	case ColumnZ:
		return r.Z, true
	}
	return 0, false
}

// Categorical looks up a categorical column by name.
func (r PredictionRecord) Categorical(column string) (string, bool) {
	switch column {
	case ColumnCut:
		return string(r.Cut), true
	case ColumnColor:
		return string(r.Color), true
	case ColumnClarity:
		return string(r.Clarity), true
	}
	return "", false
}

// Row renders every column as display text, aligned with Columns.
func (r PredictionRecord) Row() []string {
	row := make([]string, 0, len(recordColumns))
	for _, col := range recordColumns {
		if v, ok := r.Numeric(col); ok {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			continue
		}
		v, _ := r.Categorical(col)
		row = append(row, v)
	}
	return row
}
