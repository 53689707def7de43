// Taipei Metro reference data: five lines, no hand-entered fare matrix
// (see taipei.go for the estimated fares).
package fare

import "tpass/internal/domain"

var taipeiMetroStations = []domain.Station{
	// Wenhu line (BR)
	{Code: "BR01", Name: "動物園", NameEn: "Taipei Zoo", Line: "BR"},
	{Code: "BR02", Name: "木柵", NameEn: "Muzha", Line: "BR"},
	{Code: "BR03", Name: "萬芳社區", NameEn: "Wanfang Community", Line: "BR"},
	{Code: "BR04", Name: "萬芳醫院", NameEn: "Wanfang Hospital", Line: "BR"},
	{Code: "BR05", Name: "辛亥", NameEn: "Xinhai", Line: "BR"},
	{Code: "BR06", Name: "麟光", NameEn: "Linguang", Line: "BR"},
	{Code: "BR07", Name: "六張犁", NameEn: "Liuzhangli", Line: "BR"},
	{Code: "BR08", Name: "科技大樓", NameEn: "Technology Building", Line: "BR"},
	{Code: "BR09", Name: "大安", NameEn: "Daan", Line: "BR", TransferLines: []string{"R"}},
	{Code: "BR10", Name: "忠孝復興", NameEn: "Zhongxiao Fuxing", Line: "BR", TransferLines: []string{"BL"}},
	{Code: "BR11", Name: "南京復興", NameEn: "Nanjing Fuxing", Line: "BR", TransferLines: []string{"G"}},
	{Code: "BR12", Name: "中山國中", NameEn: "Zhongshan Junior High School", Line: "BR"},
	{Code: "BR13", Name: "松山機場", NameEn: "Songshan Airport", Line: "BR"},
	{Code: "BR14", Name: "大直", NameEn: "Dazhi", Line: "BR"},
	{Code: "BR15", Name: "劍南路", NameEn: "Jiannan Road", Line: "BR"},
	{Code: "BR16", Name: "西湖", NameEn: "Xihu", Line: "BR"},
	{Code: "BR17", Name: "港墘", NameEn: "Gangqian", Line: "BR"},
	{Code: "BR18", Name: "文德", NameEn: "Wende", Line: "BR"},
	{Code: "BR19", Name: "內湖", NameEn: "Neihu", Line: "BR"},
	{Code: "BR20", Name: "大湖公園", NameEn: "Dahu Park", Line: "BR"},
	{Code: "BR21", Name: "葫洲", NameEn: "Huzhou", Line: "BR"},
	{Code: "BR22", Name: "東湖", NameEn: "Donghu", Line: "BR"},
	{Code: "BR23", Name: "南港軟體園區", NameEn: "Nangang Software Park", Line: "BR"},
	{Code: "BR24", Name: "南港展覽館", NameEn: "Taipei Nangang Exhibition Center", Line: "BR", TransferLines: []string{"BL"}},

	// Tamsui-Xinyi line (R)
	{Code: "R02", Name: "淡水", NameEn: "Tamsui", Line: "R"},
	{Code: "R03", Name: "紅樹林", NameEn: "Hongshulin", Line: "R"},
	{Code: "R04", Name: "竹圍", NameEn: "Zhuwei", Line: "R"},
	{Code: "R05", Name: "關渡", NameEn: "Guandu", Line: "R"},
	{Code: "R06", Name: "忠義", NameEn: "Zhongyi", Line: "R"},
	{Code: "R07", Name: "復興崗", NameEn: "Fuxinggang", Line: "R"},
	{Code: "R08", Name: "北投", NameEn: "Beitou", Line: "R"},
	{Code: "R09", Name: "新北投", NameEn: "Xinbeitou", Line: "R"},
	{Code: "R10", Name: "奇岩", NameEn: "Qiyan", Line: "R"},
	{Code: "R11", Name: "唭哩岸", NameEn: "Qilian", Line: "R"},
	{Code: "R12", Name: "石牌", NameEn: "Shipai", Line: "R"},
	{Code: "R13", Name: "明德", NameEn: "Mingde", Line: "R"},
	{Code: "R14", Name: "芝山", NameEn: "Zhishan", Line: "R"},
	{Code: "R15", Name: "士林", NameEn: "Shilin", Line: "R"},
	{Code: "R16", Name: "劍潭", NameEn: "Jiantan", Line: "R"},
	{Code: "R17", Name: "圓山", NameEn: "Yuanshan", Line: "R"},
	{Code: "R18", Name: "民權西路", NameEn: "Minquan W. Rd.", Line: "R", TransferLines: []string{"O"}},
	{Code: "R19", Name: "雙連", NameEn: "Shuanglian", Line: "R"},
	{Code: "R20", Name: "中山", NameEn: "Zhongshan", Line: "R", TransferLines: []string{"G"}},
	{Code: "R21", Name: "台北車站", NameEn: "Taipei Main Station", Line: "R", TransferLines: []string{"BL"}},
	{Code: "R22", Name: "台大醫院", NameEn: "NTU Hospital", Line: "R"},
	{Code: "R23", Name: "中正紀念堂", NameEn: "Chiang Kai-Shek Memorial Hall", Line: "R", TransferLines: []string{"G"}},
	{Code: "R24", Name: "東門", NameEn: "Dongmen", Line: "R", TransferLines: []string{"O"}},
	{Code: "R25", Name: "大安森林公園", NameEn: "Daan Park", Line: "R"},
	{Code: "R26", Name: "大安", NameEn: "Daan", Line: "R", TransferLines: []string{"BR"}},
	{Code: "R27", Name: "信義安和", NameEn: "Xinyi Anhe", Line: "R"},
	{Code: "R28", Name: "台北101/世貿", NameEn: "Taipei 101/World Trade Center", Line: "R"},
	{Code: "R29", Name: "象山", NameEn: "Xiangshan", Line: "R"},

	// Songshan-Xindian line (G)
	{Code: "G01", Name: "新店", NameEn: "Xindian", Line: "G"},
	{Code: "G02", Name: "新店區公所", NameEn: "Xindian District Office", Line: "G"},
	{Code: "G03", Name: "七張", NameEn: "Qizhang", Line: "G"},
	{Code: "G03A", Name: "小碧潭", NameEn: "Xiaobitan", Line: "G"},
	{Code: "G04", Name: "大坪林", NameEn: "Dapinglin", Line: "G"},
	{Code: "G05", Name: "景美", NameEn: "Jingmei", Line: "G"},
	{Code: "G06", Name: "萬隆", NameEn: "Wanlong", Line: "G"},
	{Code: "G07", Name: "公館", NameEn: "Gongguan", Line: "G"},
	{Code: "G08", Name: "台電大樓", NameEn: "Taipower Building", Line: "G"},
	{Code: "G09", Name: "古亭", NameEn: "Guting", Line: "G", TransferLines: []string{"O"}},
	{Code: "G10", Name: "中正紀念堂", NameEn: "Chiang Kai-Shek Memorial Hall", Line: "G", TransferLines: []string{"R"}},
	{Code: "G11", Name: "小南門", NameEn: "Xiaonanmen", Line: "G"},
	{Code: "G12", Name: "西門", NameEn: "Ximen", Line: "G", TransferLines: []string{"BL"}},
	{Code: "G13", Name: "北門", NameEn: "Beimen", Line: "G"},
	{Code: "G14", Name: "中山", NameEn: "Zhongshan", Line: "G", TransferLines: []string{"R"}},
	{Code: "G15", Name: "松江南京", NameEn: "Songjiang Nanjing", Line: "G", TransferLines: []string{"O"}},
	{Code: "G16", Name: "南京復興", NameEn: "Nanjing Fuxing", Line: "G", TransferLines: []string{"BR"}},
	{Code: "G17", Name: "台北小巨蛋", NameEn: "Taipei Arena", Line: "G"},
	{Code: "G18", Name: "南京三民", NameEn: "Nanjing Sanmin", Line: "G"},
	{Code: "G19", Name: "松山", NameEn: "Songshan", Line: "G"},

	// Zhonghe-Xinlu line (O)
	{Code: "O01", Name: "南勢角", NameEn: "Nanshijiao", Line: "O"},
	{Code: "O02", Name: "景安", NameEn: "Jingan", Line: "O"},
	{Code: "O03", Name: "永安市場", NameEn: "Yongan Market", Line: "O"},
	{Code: "O04", Name: "頂溪", NameEn: "Dingxi", Line: "O"},
	{Code: "O05", Name: "古亭", NameEn: "Guting", Line: "O", TransferLines: []string{"G"}},
	{Code: "O06", Name: "東門", NameEn: "Dongmen", Line: "O", TransferLines: []string{"R"}},
	{Code: "O07", Name: "忠孝新生", NameEn: "Zhongxiao Xinsheng", Line: "O", TransferLines: []string{"BL"}},
	{Code: "O08", Name: "松江南京", NameEn: "Songjiang Nanjing", Line: "O", TransferLines: []string{"G"}},
	{Code: "O09", Name: "行天宮", NameEn: "Xingtian Temple", Line: "O"},
	{Code: "O10", Name: "中山國小", NameEn: "Zhongshan Elementary School", Line: "O"},
	{Code: "O11", Name: "民權西路", NameEn: "Minquan W. Rd.", Line: "O", TransferLines: []string{"R"}},
	{Code: "O12", Name: "大橋頭", NameEn: "Daqiaotou", Line: "O"},
	{Code: "O13", Name: "台北橋", NameEn: "Taipei Bridge", Line: "O"},
	{Code: "O14", Name: "菜寮", NameEn: "Cailiao", Line: "O"},
	{Code: "O15", Name: "三重", NameEn: "Sanchong", Line: "O"},
	{Code: "O16", Name: "先嗇宮", NameEn: "Xianse Temple", Line: "O"},
	{Code: "O17", Name: "頭前庄", NameEn: "Touqianzhuang", Line: "O"},
	{Code: "O18", Name: "新莊", NameEn: "Xinzhuang", Line: "O"},
	{Code: "O19", Name: "輔大", NameEn: "Fu Jen University", Line: "O"},
	{Code: "O20", Name: "丹鳳", NameEn: "Danfeng", Line: "O"},
	{Code: "O21", Name: "迴龍", NameEn: "Huilong", Line: "O"},
	{Code: "O50", Name: "蘆洲", NameEn: "Luzhou", Line: "O"},
	{Code: "O51", Name: "三民高中", NameEn: "Sanmin Senior High School", Line: "O"},
	{Code: "O52", Name: "徐匯中學", NameEn: "St. Ignatius High School", Line: "O"},
	{Code: "O53", Name: "三和國中", NameEn: "Sanhe Junior High School", Line: "O"},
	{Code: "O54", Name: "三重國小", NameEn: "Sanchong Elementary School", Line: "O"},

	// Bannan line (BL)
	{Code: "BL01", Name: "頂埔", NameEn: "Dingpu", Line: "BL"},
	{Code: "BL02", Name: "永寧", NameEn: "Yongning", Line: "BL"},
	{Code: "BL03", Name: "土城", NameEn: "Tucheng", Line: "BL"},
	{Code: "BL04", Name: "海山", NameEn: "Haishan", Line: "BL"},
	{Code: "BL05", Name: "亞東醫院", NameEn: "Far Eastern Hospital", Line: "BL"},
	{Code: "BL06", Name: "府中", NameEn: "Fuzhong", Line: "BL"},
	{Code: "BL07", Name: "板橋", NameEn: "Banqiao", Line: "BL"},
	{Code: "BL08", Name: "新埔", NameEn: "Xinpu", Line: "BL"},
	{Code: "BL09", Name: "江子翠", NameEn: "Jiangzicui", Line: "BL"},
	{Code: "BL10", Name: "龍山寺", NameEn: "Longshan Temple", Line: "BL"},
	{Code: "BL11", Name: "西門", NameEn: "Ximen", Line: "BL", TransferLines: []string{"G"}},
	{Code: "BL12", Name: "台北車站", NameEn: "Taipei Main Station", Line: "BL", TransferLines: []string{"R"}},
	{Code: "BL13", Name: "善導寺", NameEn: "Shandao Temple", Line: "BL"},
	{Code: "BL14", Name: "忠孝新生", NameEn: "Zhongxiao Xinsheng", Line: "BL", TransferLines: []string{"O"}},
	{Code: "BL15", Name: "忠孝復興", NameEn: "Zhongxiao Fuxing", Line: "BL", TransferLines: []string{"BR"}},
	{Code: "BL16", Name: "忠孝敦化", NameEn: "Zhongxiao Dunhua", Line: "BL"},
	{Code: "BL17", Name: "國父紀念館", NameEn: "Sun Yat-Sen Memorial Hall", Line: "BL"},
	{Code: "BL18", Name: "市政府", NameEn: "Taipei City Hall", Line: "BL"},
	{Code: "BL19", Name: "永春", NameEn: "Yongchun", Line: "BL"},
	{Code: "BL20", Name: "後山埤", NameEn: "Houshanpi", Line: "BL"},
	{Code: "BL21", Name: "昆陽", NameEn: "Kunyang", Line: "BL"},
	{Code: "BL22", Name: "南港", NameEn: "Nangang", Line: "BL"},
	{Code: "BL23", Name: "南港展覽館", NameEn: "Taipei Nangang Exhibition Center", Line: "BL", TransferLines: []string{"BR"}},
}
