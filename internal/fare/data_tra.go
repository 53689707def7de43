// TRA (Taiwan Railways) reference data for the TPASS-applicable
// Keelung-Zhongli section, local train fares. 21 stations.
package fare

import "tpass/internal/domain"

var traStations = []domain.Station{
	{Code: "TRA01", Name: "基隆", NameEn: "Keelung", Line: "TRA"},
	{Code: "TRA02", Name: "三坑", NameEn: "Sankeng", Line: "TRA"},
	{Code: "TRA03", Name: "八堵", NameEn: "Badu", Line: "TRA"},
	{Code: "TRA04", Name: "七堵", NameEn: "Qidu", Line: "TRA"},
	{Code: "TRA05", Name: "百福", NameEn: "Baifu", Line: "TRA"},
	{Code: "TRA06", Name: "五堵", NameEn: "Wudu", Line: "TRA"},
	{Code: "TRA07", Name: "汐止", NameEn: "Xizhi", Line: "TRA"},
	{Code: "TRA08", Name: "汐科", NameEn: "Xike", Line: "TRA"},
	{Code: "TRA09", Name: "南港", NameEn: "Nangang", Line: "TRA"},
	{Code: "TRA10", Name: "松山", NameEn: "Songshan", Line: "TRA"},
	{Code: "TRA11", Name: "台北", NameEn: "Taipei", Line: "TRA"},
	{Code: "TRA12", Name: "萬華", NameEn: "Wanhua", Line: "TRA"},
	{Code: "TRA13", Name: "板橋", NameEn: "Banqiao", Line: "TRA"},
	{Code: "TRA14", Name: "浮洲", NameEn: "Fuzhou", Line: "TRA"},
	{Code: "TRA15", Name: "樹林", NameEn: "Shulin", Line: "TRA"},
	{Code: "TRA16", Name: "南樹林", NameEn: "South Shulin", Line: "TRA"},
	{Code: "TRA17", Name: "山佳", NameEn: "Shanjia", Line: "TRA"},
	{Code: "TRA18", Name: "鶯歌", NameEn: "Yingge", Line: "TRA"},
	{Code: "TRA19", Name: "桃園", NameEn: "Taoyuan", Line: "TRA"},
	{Code: "TRA20", Name: "內壢", NameEn: "Neili", Line: "TRA"},
	{Code: "TRA21", Name: "中壢", NameEn: "Zhongli", Line: "TRA"},
}

var traFares = [][]int64{
	// TRA01 基隆
	{0, 15, 15, 19, 19, 23, 27, 31, 39, 46, 50, 54, 58, 62, 66, 70, 74, 78, 86, 93, 97},
	// TRA02 三坑
	{15, 0, 15, 15, 19, 19, 23, 27, 35, 42, 46, 50, 54, 58, 62, 66, 70, 74, 82, 89, 93},
	// TRA03 八堵
	{15, 15, 0, 15, 15, 19, 23, 27, 35, 42, 46, 50, 54, 58, 62, 66, 70, 74, 82, 89, 93},
	// TRA04 七堵
	{19, 15, 15, 0, 15, 15, 19, 23, 31, 38, 42, 46, 50, 54, 58, 62, 66, 70, 78, 85, 89},
	// TRA05 百福
	{19, 19, 15, 15, 0, 15, 19, 23, 31, 38, 42, 46, 50, 54, 58, 62, 66, 70, 78, 85, 89},
	// TRA06 五堵
	{23, 19, 19, 15, 15, 0, 15, 19, 27, 34, 38, 42, 46, 50, 54, 58, 62, 66, 74, 81, 85},
	// TRA07 汐止
	{27, 23, 23, 19, 19, 15, 0, 15, 23, 30, 34, 38, 42, 46, 50, 54, 58, 62, 70, 77, 81},
	// TRA08 汐科
	{31, 27, 27, 23, 23, 19, 15, 0, 19, 26, 30, 34, 38, 42, 46, 50, 54, 58, 66, 73, 77},
	// TRA09 南港
	{39, 35, 35, 31, 31, 27, 23, 19, 0, 15, 19, 23, 27, 31, 35, 39, 43, 47, 55, 62, 66},
	// TRA10 松山
	{46, 42, 42, 38, 38, 34, 30, 26, 15, 0, 15, 19, 23, 27, 31, 35, 39, 43, 51, 58, 62},
	// TRA11 台北
	{50, 46, 46, 42, 42, 38, 34, 30, 19, 15, 0, 15, 19, 23, 27, 31, 35, 39, 47, 54, 58},
	// TRA12 萬華
	{54, 50, 50, 46, 46, 42, 38, 34, 23, 19, 15, 0, 15, 19, 23, 27, 31, 35, 43, 50, 54},
	// TRA13 板橋
	{58, 54, 54, 50, 50, 46, 42, 38, 27, 23, 19, 15, 0, 15, 19, 23, 27, 31, 39, 46, 50},
	// TRA14 浮洲
	{62, 58, 58, 54, 54, 50, 46, 42, 31, 27, 23, 19, 15, 0, 15, 19, 23, 27, 35, 42, 46},
	// TRA15 樹林
	{66, 62, 62, 58, 58, 54, 50, 46, 35, 31, 27, 23, 19, 15, 0, 15, 19, 23, 31, 38, 42},
	// TRA16 南樹林
	{70, 66, 66, 62, 62, 58, 54, 50, 39, 35, 31, 27, 23, 19, 15, 0, 15, 19, 27, 34, 38},
	// TRA17 山佳
	{74, 70, 70, 66, 66, 62, 58, 54, 43, 39, 35, 31, 27, 23, 19, 15, 0, 15, 23, 30, 34},
	// TRA18 鶯歌
	{78, 74, 74, 70, 70, 66, 62, 58, 47, 43, 39, 35, 31, 27, 23, 19, 15, 0, 19, 26, 30},
	// TRA19 桃園
	{86, 82, 82, 78, 78, 74, 70, 66, 55, 51, 47, 43, 39, 35, 31, 27, 23, 19, 0, 15, 19},
	// TRA20 內壢
	{93, 89, 89, 85, 85, 81, 77, 73, 62, 58, 54, 50, 46, 42, 38, 34, 30, 26, 15, 0, 15},
	// TRA21 中壢
	{97, 93, 93, 89, 89, 85, 81, 77, 66, 62, 58, 54, 50, 46, 42, 38, 34, 30, 19, 15, 0},
}
