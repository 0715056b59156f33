package dataset

// Default returns the embedded fallback network, a slice of the Bogotá
// SITP/TransMilenio trunk system. Used when no dataset source is given.
//
// Link times are calibrated so that no link is effectively faster than
// 0.5 km/min, which keeps the 2 min/km time heuristic admissible on this
// network.
func Default() *Dataset {
	return &Dataset{
		Stations: map[string]Station{
			"Portal del Norte": {Lat: 4.7545, Lon: -74.0460},
			"Toberín":          {Lat: 4.7472, Lon: -74.0437},
			"Calle 146":        {Lat: 4.7280, Lon: -74.0430},
			"Calle 100":        {Lat: 4.6846, Lon: -74.0570},
			"Héroes":           {Lat: 4.6680, Lon: -74.0620},
			"Calle 72":         {Lat: 4.6580, Lon: -74.0650},
			"Calle 45":         {Lat: 4.6320, Lon: -74.0700},
			"Av. Jiménez":      {Lat: 4.6020, Lon: -74.0730},
			"Portal Suba":      {Lat: 4.7450, Lon: -74.0940},
			"Niza Calle 127":   {Lat: 4.7050, Lon: -74.0720},
			"Suba Calle 95":    {Lat: 4.6920, Lon: -74.0780},
			"Ricaurte":         {Lat: 4.6130, Lon: -74.0900},
		},
		Links: []Link{
			// troncal Autonorte / Caracas
			{From: "Portal del Norte", To: "Toberín", Line: "B", Time: 3},
			{From: "Toberín", To: "Calle 146", Line: "B", Time: 5},
			{From: "Calle 146", To: "Calle 100", Line: "B", Time: 11},
			{From: "Calle 100", To: "Héroes", Line: "B", Time: 4},
			{From: "Héroes", To: "Calle 72", Line: "B", Time: 3},
			{From: "Calle 72", To: "Calle 45", Line: "B", Time: 6},
			{From: "Calle 45", To: "Av. Jiménez", Line: "B", Time: 7},
			// troncal Suba
			{From: "Portal Suba", To: "Niza Calle 127", Line: "C", Time: 11},
			{From: "Niza Calle 127", To: "Suba Calle 95", Line: "C", Time: 4},
			{From: "Suba Calle 95", To: "Héroes", Line: "C", Time: 7},
			// troncal Américas
			{From: "Av. Jiménez", To: "Ricaurte", Line: "F", Time: 5},
		},
		TransferPenalty: 4,
	}
}
