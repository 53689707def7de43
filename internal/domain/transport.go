package domain

// TransportType identifies one of the TPASS-covered transit modes.
type TransportType string

const (
	TransportTaipeiMetro    TransportType = "taipei_metro"
	TransportNewTaipeiMetro TransportType = "new_taipei_metro"
	TransportTaoyuanMetro   TransportType = "taoyuan_metro"
	TransportDanhaiLRT      TransportType = "danhai_lrt"
	TransportAnkengLRT      TransportType = "ankeng_lrt"
	TransportTRA            TransportType = "tra"
	TransportBus            TransportType = "bus"
	TransportHighwayBus     TransportType = "highway_bus"
	TransportYouBike        TransportType = "youbike"
	TransportFerry          TransportType = "ferry"
)

// TransportTypeInfo carries display metadata for a transport type.
type TransportTypeInfo struct {
	Type  TransportType `json:"type"`
	Label string        `json:"label"`
	Icon  string        `json:"icon"`
	Color string        `json:"color"`
}

var transportTypeInfo = map[TransportType]TransportTypeInfo{
	TransportTaipeiMetro:    {Type: TransportTaipeiMetro, Label: "台北捷運", Icon: "metro", Color: "#0066CC"},
	TransportNewTaipeiMetro: {Type: TransportNewTaipeiMetro, Label: "新北捷運", Icon: "metro", Color: "#FFCC00"},
	TransportTaoyuanMetro:   {Type: TransportTaoyuanMetro, Label: "桃園機捷", Icon: "airportExpress", Color: "#8246AF"},
	TransportDanhaiLRT:      {Type: TransportDanhaiLRT, Label: "淡海輕軌", Icon: "lightRail", Color: "#00A3E0"},
	TransportAnkengLRT:      {Type: TransportAnkengLRT, Label: "安坑輕軌", Icon: "lightRail", Color: "#80CC28"},
	TransportTRA:            {Type: TransportTRA, Label: "台鐵", Icon: "train", Color: "#0072BC"},
	TransportBus:            {Type: TransportBus, Label: "公車", Icon: "bus", Color: "#E31937"},
	TransportHighwayBus:     {Type: TransportHighwayBus, Label: "客運", Icon: "coach", Color: "#FF6600"},
	TransportYouBike:        {Type: TransportYouBike, Label: "YouBike", Icon: "bike", Color: "#FFA500"},
	TransportFerry:          {Type: TransportFerry, Label: "渡輪", Icon: "ferry", Color: "#006994"},
}

// transportOrder is the display order used across the app (Taoyuan Airport MRT first).
var transportOrder = []TransportType{
	TransportTaoyuanMetro,
	TransportTaipeiMetro,
	TransportYouBike,
	TransportNewTaipeiMetro,
	TransportTRA,
	TransportBus,
	TransportHighwayBus,
	TransportDanhaiLRT,
	TransportAnkengLRT,
	TransportFerry,
}

// AllTransportTypes returns every supported transport type in display order.
func AllTransportTypes() []TransportType {
	out := make([]TransportType, len(transportOrder))
	copy(out, transportOrder)
	return out
}

// TransportInfo returns display metadata for the given transport type.
// The second return value is false for unknown types.
func TransportInfo(t TransportType) (TransportTypeInfo, bool) {
	info, ok := transportTypeInfo[t]
	return info, ok
}

// ValidTransportType reports whether t is one of the supported transport types.
func ValidTransportType(t TransportType) bool {
	_, ok := transportTypeInfo[t]
	return ok
}

// YouBikeCity identifies the city a YouBike ride occurred in.
// The city determines the free-minutes window of the fee schedule.
type YouBikeCity string

const (
	CityTaipei    YouBikeCity = "taipei"
	CityNewTaipei YouBikeCity = "new_taipei"
	CityTaoyuan   YouBikeCity = "taoyuan"
	CityKeelung   YouBikeCity = "keelung"
)

// ValidYouBikeCity reports whether c is a supported YouBike city.
func ValidYouBikeCity(c YouBikeCity) bool {
	switch c {
	case CityTaipei, CityNewTaipei, CityTaoyuan, CityKeelung:
		return true
	}
	return false
}
