// Ankeng LRT reference data. 9 stations (K01-K09), fares 20-30 TWD.
package fare

import "tpass/internal/domain"

var ankengStations = []domain.Station{
	{Code: "K01", Name: "十四張", NameEn: "Shisizhang", Line: "K", TransferLines: []string{"Y"}},
	{Code: "K02", Name: "陽光運動公園", NameEn: "Sunshine Sports Park", Line: "K"},
	{Code: "K03", Name: "新和國小", NameEn: "Xinhe Elementary School", Line: "K"},
	{Code: "K04", Name: "安康", NameEn: "Ankang", Line: "K"},
	{Code: "K05", Name: "景文科大", NameEn: "Jinwen University", Line: "K"},
	{Code: "K06", Name: "耕莘安康院區", NameEn: "Cardinal Tien Ankang", Line: "K"},
	{Code: "K07", Name: "安坑國小", NameEn: "Ankeng Elementary School", Line: "K"},
	{Code: "K08", Name: "雙城", NameEn: "Shuangcheng", Line: "K"},
	{Code: "K09", Name: "玫瑰中國城", NameEn: "Rose Chinatown", Line: "K"},
}

var ankengFares = [][]int64{
	// K01 十四張
	{0, 20, 20, 20, 25, 25, 25, 30, 30},
	// K02 陽光運動公園
	{20, 0, 20, 20, 20, 25, 25, 25, 30},
	// K03 新和國小
	{20, 20, 0, 20, 20, 20, 25, 25, 25},
	// K04 安康
	{20, 20, 20, 0, 20, 20, 20, 25, 25},
	// K05 景文科大
	{25, 20, 20, 20, 0, 20, 20, 20, 25},
	// K06 耕莘安康院區
	{25, 25, 20, 20, 20, 0, 20, 20, 20},
	// K07 安坑國小
	{25, 25, 25, 20, 20, 20, 0, 20, 20},
	// K08 雙城
	{30, 25, 25, 25, 20, 20, 20, 0, 20},
	// K09 玫瑰中國城
	{30, 30, 25, 25, 25, 20, 20, 20, 0},
}
