// Danhai LRT reference data: Green Mountain and Blue Coast lines.
// 14 stations, fares 20-30 TWD.
package fare

import "tpass/internal/domain"

var danhaiStations = []domain.Station{
	// Green Mountain line (V)
	{Code: "V01", Name: "紅樹林", NameEn: "Hongshulin", Line: "V", TransferLines: []string{"R"}},
	{Code: "V02", Name: "竿蓁林", NameEn: "Ganzhenlin", Line: "V"},
	{Code: "V03", Name: "淡金鄧公", NameEn: "Danjin Denggong", Line: "V"},
	{Code: "V04", Name: "淡江大學", NameEn: "Tamkang University", Line: "V"},
	{Code: "V05", Name: "淡金北新", NameEn: "Danjin Beixin", Line: "V"},
	{Code: "V06", Name: "新市一路", NameEn: "Xinshi 1st Road", Line: "V"},
	{Code: "V07", Name: "淡水行政中心", NameEn: "Tamsui Admin Center", Line: "V"},
	{Code: "V08", Name: "濱海義山", NameEn: "Binhai Yishan", Line: "V"},
	{Code: "V09", Name: "濱海沙崙", NameEn: "Binhai Shalun", Line: "V"},
	{Code: "V10", Name: "淡海新市鎮", NameEn: "Danhai New Town", Line: "V"},
	{Code: "V11", Name: "崁頂", NameEn: "Kanding", Line: "V"},

	// Blue Coast line (VB)
	{Code: "V26", Name: "淡水漁人碼頭", NameEn: "Tamsui Fisherman's Wharf", Line: "VB"},
	{Code: "V27", Name: "沙崙", NameEn: "Shalun", Line: "VB"},
	{Code: "V28", Name: "台北海洋大學", NameEn: "Taipei Ocean University", Line: "VB"},
}

var danhaiFares = [][]int64{
	// V01 紅樹林
	{0, 20, 20, 20, 25, 25, 25, 30, 30, 30, 30, 30, 30, 30},
	// V02 竿蓁林
	{20, 0, 20, 20, 20, 25, 25, 25, 30, 30, 30, 30, 30, 30},
	// V03 淡金鄧公
	{20, 20, 0, 20, 20, 20, 25, 25, 25, 30, 30, 30, 30, 30},
	// V04 淡江大學
	{20, 20, 20, 0, 20, 20, 20, 25, 25, 25, 30, 30, 30, 30},
	// V05 淡金北新
	{25, 20, 20, 20, 0, 20, 20, 20, 25, 25, 25, 30, 30, 30},
	// V06 新市一路
	{25, 25, 20, 20, 20, 0, 20, 20, 20, 25, 25, 30, 30, 30},
	// V07 淡水行政中心
	{25, 25, 25, 20, 20, 20, 0, 20, 20, 20, 25, 25, 25, 25},
	// V08 濱海義山
	{30, 25, 25, 25, 20, 20, 20, 0, 20, 20, 20, 25, 25, 25},
	// V09 濱海沙崙
	{30, 30, 25, 25, 25, 20, 20, 20, 0, 20, 20, 20, 20, 20},
	// V10 淡海新市鎮
	{30, 30, 30, 25, 25, 25, 20, 20, 20, 0, 20, 25, 25, 25},
	// V11 崁頂
	{30, 30, 30, 30, 25, 25, 25, 20, 20, 20, 0, 25, 25, 25},
	// V26 淡水漁人碼頭
	{30, 30, 30, 30, 30, 30, 25, 25, 20, 25, 25, 0, 20, 20},
	// V27 沙崙
	{30, 30, 30, 30, 30, 30, 25, 25, 20, 25, 25, 20, 0, 20},
	// V28 台北海洋大學
	{30, 30, 30, 30, 30, 30, 25, 25, 20, 25, 25, 20, 20, 0},
}
