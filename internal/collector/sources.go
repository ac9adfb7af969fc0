package collector

// 按类别组织的来源配置表。配置是纯数据：管线本身不关心任何具体站点，
// 新增来源只需在这里加一行
const (
	CategoryGlobal      = "global"
	CategoryIndustry    = "industry"
	CategoryFinance     = "finance"
	CategoryReliability = "reliability"
)

var globalGroups = []Group{
	{
		Name: "Russia",
		Sources: []Source{
			{URL: "https://www.rt.com/rss/news/", Kind: KindFeed},
			{URL: "https://tass.com/rss/v2.xml", Kind: KindFeed},
		},
	},
	{
		Name: "Europe",
		Sources: []Source{
			{URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Kind: KindFeed},
			{URL: "https://www.euronews.com/rss?level=vertical&name=news", Kind: KindFeed},
		},
	},
	{
		Name: "The East",
		Sources: []Source{
			{URL: "https://www.aljazeera.com/xml/rss/all.xml", Kind: KindFeed},
			{URL: "https://www.tehrantimes.com/rss", Kind: KindFeed},
		},
	},
	{
		Name: "USA",
		Sources: []Source{
			{URL: "https://feeds.npr.org/1001/rss.xml", Kind: KindFeed},
			{URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Kind: KindFeed},
		},
	},
}

var industryGroups = []Group{
	{
		Name: "Нефть и Газ (RU)",
		Sources: []Source{
			{URL: "https://angi.ru/", Kind: KindScrape, Selector: `a[href^="/news/"]`, BaseURL: "https://angi.ru"},
		},
	},
	{
		Name:    "Технологии (WW)",
		Sources: []Source{{URL: "https://techcrunch.com/feed/", Kind: KindFeed}},
	},
	{
		Name:    "Логистика",
		Sources: []Source{{URL: "https://gcaptain.com/feed/", Kind: KindFeed}},
	},
	{
		Name:    "Металлы / Mining",
		Sources: []Source{{URL: "https://www.mining.com/feed/", Kind: KindFeed}},
	},
	{
		Name:    "Агропром (RU)",
		Sources: []Source{{URL: "https://www.agroxxi.ru/news/rss.xml", Kind: KindFeed}},
	},
	{
		Name:    "Энергетика (WW)",
		Sources: []Source{{URL: "https://www.worldoil.com/rss", Kind: KindFeed}},
	},
}

var financeGroups = []Group{
	{Name: "Financial Times", Sources: []Source{{URL: "https://www.ft.com/?format=rss", Kind: KindFeed}}},
	{Name: "Bloomberg", Sources: []Source{{URL: "https://www.bloomberg.com/feeds/bview/rss", Kind: KindFeed}}},
	{Name: "Nikkei Asia", Sources: []Source{{URL: "https://asia.nikkei.com/rss/feed/nar", Kind: KindFeed}}},
	{Name: "SCMP Business", Sources: []Source{{URL: "https://www.scmp.com/rss/91/feed.xml", Kind: KindFeed}}},
	{Name: "Gulf Business", Sources: []Source{{URL: "https://gulfbusiness.com/feed/", Kind: KindFeed}}},
	{Name: "CNBC Markets", Sources: []Source{{URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Kind: KindFeed}}},
	{Name: "MarketWatch", Sources: []Source{{URL: "https://feeds.content.dowjones.io/public/rss/mw_topstories", Kind: KindFeed}}},
	{Name: "Fortune", Sources: []Source{{URL: "https://fortune.com/feed/", Kind: KindFeed}}},
	{Name: "Forbes", Sources: []Source{{URL: "https://www.forbes.com/business/feed/", Kind: KindFeed}}},
}

var reliabilityGroups = []Group{
	{Name: "ECA GMP Academy", Sources: []Source{{URL: "https://www.gmp-compliance.org/gmp-news/rss", Kind: KindFeed}}},
	{Name: "Pharma Manufacturing (GMP)", Sources: []Source{{URL: "https://www.pharmamanufacturing.com/rss", Kind: KindFeed}}},
	{Name: "Maintworld (EU)", Sources: []Source{{URL: "https://www.maintworld.com/feed", Kind: KindFeed}}},
	{Name: "Uptime Magazine", Sources: []Source{{URL: "https://www.uptimemagazine.com/feed/", Kind: KindFeed}}},
	{Name: "FacilitiesNet", Sources: []Source{{URL: "https://www.facilitiesnet.com/rss/all/RSS2.xml", Kind: KindFeed}}},
	{Name: "1С:ТОИР (RU)", Sources: []Source{{URL: "https://1ctoir.ru/news/", Kind: KindScrape, Selector: ".news-item__title a", BaseURL: "https://1ctoir.ru"}}},
	{Name: "Управление производством (RU)", Sources: []Source{{URL: "https://up-pro.ru/feed/", Kind: KindFeed}}},
	{Name: "Prostoev.net (RU)", Sources: []Source{{URL: "https://prostoev.net/feed/", Kind: KindFeed}}},
	{Name: "Asian Power (Asia)", Sources: []Source{{URL: "https://asian-power.com/rss", Kind: KindFeed}}},
	{Name: "Reliable Plant (WW)", Sources: []Source{{URL: "https://www.reliableplant.com/rss", Kind: KindFeed}}},
	{Name: "MRO Magazine (CA)", Sources: []Source{{URL: "https://www.mromagazine.com/feed/", Kind: KindFeed}}},
	{Name: "ReliabilityWeb", Sources: []Source{{URL: "https://reliabilityweb.com/rss", Kind: KindFeed}}},
	{Name: "Maintenance World", Sources: []Source{{URL: "https://www.maintenanceworld.com/feed/", Kind: KindFeed}}},
	{Name: "Engineering.com", Sources: []Source{{URL: "https://www.engineering.com/Rss.aspx", Kind: KindFeed}}},
	{Name: "Accendo Reliability", Sources: []Source{{URL: "https://accendoreliability.com/feed/", Kind: KindFeed}}},
	{Name: "Plant Engineering", Sources: []Source{{URL: "https://www.plantengineering.com/feed/", Kind: KindFeed}}},
	{Name: "Efficient Plant", Sources: []Source{{URL: "https://www.efficientplantmag.com/feed/", Kind: KindFeed}}},
	{Name: "Reliability Connect", Sources: []Source{{URL: "https://reliabilityconnect.com/feed/", Kind: KindFeed}}},
	{Name: "BIC Magazine", Sources: []Source{{URL: "https://www.bicmagazine.com/feed/", Kind: KindFeed}}},
	{Name: "Processing Magazine", Sources: []Source{{URL: "https://www.processingmagazine.com/maintenance-safety/feed/", Kind: KindFeed}}},
}

// GroupsForCategory 返回某类别的来源分组；未知类别回退到 global
func GroupsForCategory(category string) []Group {
	switch category {
	case CategoryIndustry:
		return industryGroups
	case CategoryFinance:
		return financeGroups
	case CategoryReliability:
		return reliabilityGroups
	default:
		return globalGroups
	}
}

// Categories 全部有效类别，供一次性采集与缓存预热遍历
func Categories() []string {
	return []string{CategoryGlobal, CategoryIndustry, CategoryFinance, CategoryReliability}
}

// reliabilityLexicon 设备可靠性/维护领域的双语（英/俄）关键词词干，
// 全部小写，按子串匹配。reliability 类别的来源多为综合工业媒体，
// 用该词表过滤掉与主题无关的条目
var reliabilityLexicon = []string{
	// 英文词干
	"maintenance", "reliability", "reliable", "asset", "predictive",
	"preventive", "condition monitoring", "vibration", "lubric",
	"downtime", "uptime", "failure", "breakdown", "mtbf", "mttr",
	"cmms", "eam", "mro", "overhaul", "inspect", "calibrat",
	"root cause", "rcm", "tpm", "oee", "spare part", "shutdown",
	"turnaround", "plant", "equipment", "machin", "rotating",
	"bearing", "pump", "compressor", "motor", "gmp", "validation",
	// 俄文词干
	"тоир", "надежност", "надёжност", "ремонт", "обслуживани",
	"техобслуживани", "оборудовани", "диагностик", "вибраци",
	"простоев", "простой", "отказ", "наработк", "регламент",
	"смазк", "запчаст", "подшипник", "насос", "производств",
}

// topicScoped 判断某类别是否启用主题相关性过滤
func topicScoped(category string) bool {
	return category == CategoryReliability
}
