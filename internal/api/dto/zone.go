package dto

type ZoneRequest struct {
	Name         string  `json:"name"`
	ZoneID       string  `json:"zone_id"`
	Streets      string  `json:"streets"`
	PriceGazelle float64 `json:"price_gazelle"`
	PriceValday  float64 `json:"price_valday"`
	PriceKamaz   float64 `json:"price_kamaz"`
	AvgDistance  float64 `json:"avg_distance_km"`
}

// UpdateZoneRequest replaces the full row matched by Name. Omitted fields
// are written as their zero values, not preserved.
type UpdateZoneRequest struct {
	Name string      `json:"name"`
	Zone ZoneRequest `json:"zone"`
}

type ZoneResponse struct {
	Name         string  `json:"name"`
	ZoneID       string  `json:"zone_id"`
	Streets      string  `json:"streets"`
	PriceGazelle float64 `json:"price_gazelle"`
	PriceValday  float64 `json:"price_valday"`
	PriceKamaz   float64 `json:"price_kamaz"`
	AvgDistance  float64 `json:"avg_distance_km"`
}

type ListZonesResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

type ZoneSuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
