// Taoyuan Metro (Airport MRT, A line) reference data.
// 22 stations (A1-A22), fares 30-160 TWD.
package fare

import "tpass/internal/domain"

var taoyuanStations = []domain.Station{
	{Code: "A1", Name: "台北車站", NameEn: "Taipei Main Station", Line: "A", IsExpress: true},
	{Code: "A2", Name: "三重", NameEn: "Sanchong", Line: "A"},
	{Code: "A3", Name: "新北產業園區", NameEn: "New Taipei Industrial Park", Line: "A", IsExpress: true},
	{Code: "A4", Name: "新莊副都心", NameEn: "Xinzhuang Fuduxin", Line: "A"},
	{Code: "A5", Name: "泰山", NameEn: "Taishan", Line: "A"},
	{Code: "A6", Name: "泰山貴和", NameEn: "Taishan Guihe", Line: "A"},
	{Code: "A7", Name: "體育大學", NameEn: "National Sports University", Line: "A"},
	{Code: "A8", Name: "長庚醫院", NameEn: "Chang Gung Memorial Hospital", Line: "A", IsExpress: true},
	{Code: "A9", Name: "林口", NameEn: "Linkou", Line: "A"},
	{Code: "A10", Name: "山鼻", NameEn: "Shanbi", Line: "A"},
	{Code: "A11", Name: "坑口", NameEn: "Kengkou", Line: "A"},
	{Code: "A12", Name: "機場第一航廈", NameEn: "Airport Terminal 1", Line: "A", IsExpress: true},
	{Code: "A13", Name: "機場第二航廈", NameEn: "Airport Terminal 2", Line: "A", IsExpress: true},
	{Code: "A14a", Name: "機場旅館", NameEn: "Airport Hotel", Line: "A"},
	{Code: "A15", Name: "大園", NameEn: "Dayuan", Line: "A"},
	{Code: "A16", Name: "橫山", NameEn: "Hengshan", Line: "A"},
	{Code: "A17", Name: "領航", NameEn: "Linghang", Line: "A"},
	{Code: "A18", Name: "高鐵桃園站", NameEn: "HSR Taoyuan", Line: "A", IsExpress: true},
	{Code: "A19", Name: "桃園體育園區", NameEn: "Taoyuan Sports Park", Line: "A"},
	{Code: "A20", Name: "興南", NameEn: "Xingnan", Line: "A"},
	{Code: "A21", Name: "環北", NameEn: "Huanbei", Line: "A", IsExpress: true},
	{Code: "A22", Name: "老街溪", NameEn: "Laojie Creek", Line: "A"},
}

var taoyuanFares = [][]int64{
	// A1 台北車站
	{0, 35, 40, 45, 50, 55, 75, 80, 85, 105, 110, 115, 115, 120, 125, 135, 140, 145, 150, 155, 160, 160},
	// A2 三重
	{35, 0, 30, 30, 35, 40, 60, 65, 70, 90, 95, 100, 100, 105, 110, 120, 125, 130, 135, 140, 145, 150},
	// A3 新北產業園區
	{40, 30, 0, 30, 30, 35, 55, 60, 65, 85, 90, 95, 95, 100, 105, 115, 120, 125, 130, 135, 140, 145},
	// A4 新莊副都心
	{45, 30, 30, 0, 30, 30, 50, 55, 60, 80, 85, 90, 90, 95, 100, 110, 115, 120, 125, 130, 135, 140},
	// A5 泰山
	{50, 35, 30, 30, 0, 30, 45, 50, 55, 75, 80, 85, 90, 90, 100, 105, 110, 115, 120, 125, 130, 135},
	// A6 泰山貴和
	{55, 40, 35, 30, 30, 0, 40, 50, 55, 70, 75, 80, 85, 85, 95, 100, 105, 110, 115, 120, 130, 130},
	// A7 體育大學
	{75, 60, 55, 50, 45, 40, 0, 30, 35, 50, 55, 60, 65, 65, 75, 80, 85, 90, 95, 100, 110, 110},
	// A8 長庚醫院
	{80, 65, 60, 55, 50, 50, 30, 0, 30, 45, 50, 55, 60, 60, 70, 75, 80, 85, 90, 95, 100, 105},
	// A9 林口
	{85, 70, 65, 60, 55, 55, 35, 30, 0, 40, 45, 50, 55, 55, 65, 70, 75, 80, 85, 90, 95, 100},
	// A10 山鼻
	{105, 90, 85, 80, 75, 70, 50, 45, 40, 0, 30, 35, 35, 40, 45, 55, 60, 65, 65, 75, 80, 85},
	// A11 坑口
	{110, 95, 90, 85, 80, 75, 55, 50, 45, 30, 0, 30, 30, 35, 40, 50, 55, 60, 60, 70, 75, 80},
	// A12 機場第一航廈
	{115, 100, 95, 90, 85, 80, 60, 55, 50, 35, 30, 0, 30, 30, 35, 40, 45, 50, 55, 60, 70, 70},
	// A13 機場第二航廈
	{115, 100, 95, 90, 90, 85, 65, 60, 55, 35, 30, 30, 0, 30, 30, 40, 45, 50, 55, 60, 65, 70},
	// A14a 機場旅館
	{120, 105, 100, 95, 90, 85, 65, 60, 55, 40, 35, 30, 30, 0, 30, 35, 40, 45, 50, 55, 65, 65},
	// A15 大園
	{125, 110, 105, 100, 100, 95, 75, 70, 65, 45, 40, 35, 30, 30, 0, 30, 35, 40, 45, 50, 55, 60},
	// A16 橫山
	{135, 120, 115, 110, 105, 100, 80, 75, 70, 55, 50, 40, 40, 35, 30, 0, 30, 30, 35, 40, 50, 50},
	// A17 領航
	{140, 125, 120, 115, 110, 105, 85, 80, 75, 60, 55, 45, 45, 40, 35, 30, 0, 30, 30, 35, 45, 45},
	// A18 高鐵桃園站
	{145, 130, 125, 120, 115, 110, 90, 85, 80, 65, 60, 50, 50, 45, 40, 30, 30, 0, 30, 30, 40, 40},
	// A19 桃園體育園區
	{150, 135, 130, 125, 120, 115, 95, 90, 85, 65, 60, 55, 55, 50, 45, 35, 30, 30, 0, 30, 35, 40},
	// A20 興南
	{155, 140, 135, 130, 125, 120, 100, 95, 90, 75, 70, 60, 60, 55, 50, 40, 35, 30, 30, 0, 30, 30},
	// A21 環北
	{160, 145, 140, 135, 130, 130, 110, 100, 95, 80, 75, 70, 65, 65, 55, 50, 45, 40, 35, 30, 0, 30},
	// A22 老街溪
	{160, 150, 145, 140, 135, 130, 110, 105, 100, 85, 80, 70, 70, 65, 60, 50, 45, 40, 40, 30, 30, 0},
}
