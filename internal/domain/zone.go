package domain

import "strconv"

// Column labels of the zones table.
const (
	ColZoneName         = "Zone Name"
	ColZoneID           = "Zone ID"
	ColZoneStreets      = "Streets"
	ColZonePriceGazelle = "Price GAZelle"
	ColZonePriceValday  = "Price Valday"
	ColZonePriceKamaz   = "Price KamAZ"
	ColZoneDistance     = "Avg Distance (km)"
)

// A delivery pricing zone: a named group of streets with one delivery
// price per vehicle class. Zone names are natural keys and may repeat.
type Zone struct {
	Name         string
	ID           string
	Streets      string
	PriceGazelle float64
	PriceValday  float64
	PriceKamaz   float64
	AvgDistance  float64
}

func (z Zone) Row() []string {
	return []string{
		z.Name,
		z.ID,
		z.Streets,
		FormatNumber(z.PriceGazelle),
		FormatNumber(z.PriceValday),
		FormatNumber(z.PriceKamaz),
		FormatNumber(z.AvgDistance),
	}
}

func ZoneFromRow(t *Table, row int) Zone {
	name, _ := t.Get(row, ColZoneName)
	id, _ := t.Get(row, ColZoneID)
	streets, _ := t.Get(row, ColZoneStreets)
	return Zone{
		Name:         name,
		ID:           id,
		Streets:      streets,
		PriceGazelle: t.Float(row, ColZonePriceGazelle),
		PriceValday:  t.Float(row, ColZonePriceValday),
		PriceKamaz:   t.Float(row, ColZonePriceKamaz),
		AvgDistance:  t.Float(row, ColZoneDistance),
	}
}

// FormatNumber renders amounts, prices and distances the way the files
// store them: shortest exact decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
