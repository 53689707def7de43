package domain

// Network identifies one of the rail networks with station-pair fares.
type Network string

const (
	NetworkTaipeiMetro    Network = "taipei_metro"
	NetworkNewTaipeiMetro Network = "new_taipei_metro"
	NetworkTaoyuanMetro   Network = "taoyuan_metro"
	NetworkDanhaiLRT      Network = "danhai_lrt"
	NetworkAnkengLRT      Network = "ankeng_lrt"
	NetworkTRA            Network = "tra"
)

// Station is static reference data for one station of a rail network.
// Loaded at startup, never mutated. Code is unique within a network.
type Station struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	NameEn        string   `json:"name_en"`
	Line          string   `json:"line"`
	TransferLines []string `json:"transfer_lines,omitempty"`
	IsExpress     bool     `json:"is_express,omitempty"`
}
