// New Taipei Metro (Circular line) reference data.
// 15 stations (Y06-Y20), fares 20-55 TWD.
package fare

import "tpass/internal/domain"

var newTaipeiStations = []domain.Station{
	{Code: "Y06", Name: "大坪林", NameEn: "Dapinglin", Line: "Y", TransferLines: []string{"G"}},
	{Code: "Y07", Name: "新北產業園區", NameEn: "New Taipei Industrial Park", Line: "Y", TransferLines: []string{"A"}},
	{Code: "Y08", Name: "幸福", NameEn: "Xingfu", Line: "Y"},
	{Code: "Y09", Name: "頭前庄", NameEn: "Touqianzhuang", Line: "Y", TransferLines: []string{"O"}},
	{Code: "Y10", Name: "新埔民生", NameEn: "Xinpu Minsheng", Line: "Y", TransferLines: []string{"BL"}},
	{Code: "Y11", Name: "板橋", NameEn: "Banqiao", Line: "Y", TransferLines: []string{"BL"}},
	{Code: "Y12", Name: "板新", NameEn: "Banxin", Line: "Y"},
	{Code: "Y13", Name: "中和", NameEn: "Zhonghe", Line: "Y"},
	{Code: "Y14", Name: "橋和", NameEn: "Qiaohe", Line: "Y"},
	{Code: "Y15", Name: "中原", NameEn: "Zhongyuan", Line: "Y"},
	{Code: "Y16", Name: "板南", NameEn: "Bannan", Line: "Y"},
	{Code: "Y17", Name: "景安", NameEn: "Jingan", Line: "Y", TransferLines: []string{"O"}},
	{Code: "Y18", Name: "景平", NameEn: "Jingping", Line: "Y"},
	{Code: "Y19", Name: "秀朗橋", NameEn: "Xiulanqiao", Line: "Y"},
	{Code: "Y20", Name: "十四張", NameEn: "Shisizhang", Line: "Y", TransferLines: []string{"K"}},
}

var newTaipeiFares = [][]int64{
	// Y06 大坪林
	{0, 20, 20, 25, 30, 30, 35, 35, 40, 40, 45, 45, 50, 50, 55},
	// Y07 新北產業園區
	{20, 0, 20, 20, 25, 25, 30, 30, 35, 35, 40, 40, 45, 45, 50},
	// Y08 幸福
	{20, 20, 0, 20, 20, 25, 25, 30, 30, 35, 35, 40, 40, 45, 45},
	// Y09 頭前庄
	{25, 20, 20, 0, 20, 20, 25, 25, 30, 30, 35, 35, 40, 40, 45},
	// Y10 新埔民生
	{30, 25, 20, 20, 0, 20, 20, 25, 25, 30, 30, 35, 35, 40, 40},
	// Y11 板橋
	{30, 25, 25, 20, 20, 0, 20, 20, 25, 25, 30, 30, 35, 35, 40},
	// Y12 板新
	{35, 30, 25, 25, 20, 20, 0, 20, 20, 25, 25, 30, 30, 35, 35},
	// Y13 中和
	{35, 30, 30, 25, 25, 20, 20, 0, 20, 20, 25, 25, 30, 30, 35},
	// Y14 橋和
	{40, 35, 30, 30, 25, 25, 20, 20, 0, 20, 20, 25, 25, 30, 30},
	// Y15 中原
	{40, 35, 35, 30, 30, 25, 25, 20, 20, 0, 20, 20, 25, 25, 30},
	// Y16 板南
	{45, 40, 35, 35, 30, 30, 25, 25, 20, 20, 0, 20, 20, 25, 25},
	// Y17 景安
	{45, 40, 40, 35, 35, 30, 30, 25, 25, 20, 20, 0, 20, 20, 25},
	// Y18 景平
	{50, 45, 40, 40, 35, 35, 30, 30, 25, 25, 20, 20, 0, 20, 20},
	// Y19 秀朗橋
	{50, 45, 45, 40, 40, 35, 35, 30, 30, 25, 25, 20, 20, 0, 20},
	// Y20 十四張
	{55, 50, 45, 45, 40, 40, 35, 35, 30, 30, 25, 25, 20, 20, 0},
}
