package domain

const RestaurantName = "中正广场餐厅"

// DefaultMenu returns the catalog a fresh installation starts with. It is
// used as the fallback whenever no stored menu exists.
func DefaultMenu() []Dish {
	return []Dish{
		{
			ID:            "1",
			Name:          "早餐周末疯狂拼",
			Subtitle:      "四拼66折",
			Description:   "多款产品任拼，超值优惠，活力满满一整天。",
			Price:         13.2,
			OriginalPrice: 20,
			Image:         "https://images.unsplash.com/photo-1550547660-d9450f859349?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:      "周末疯狂拼",
		},
		{
			ID:            "2",
			Name:          "早餐周末疯狂拼",
			Subtitle:      "六拼55折",
			Description:   "更多选择，更多欢笑，家庭分享首选。",
			Price:         16.2,
			OriginalPrice: 30,
			Image:         "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:      "周末疯狂拼",
		},
		{
			ID:            "3",
			Name:          "早餐周末疯狂拼",
			Subtitle:      "八拼5折",
			Description:   "终极优惠，派对必备，美味无需等待。",
			Price:         20,
			OriginalPrice: 40,
			Image:         "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:      "周末疯狂拼",
		},
		{
			ID:          "4",
			Name:        "经典帕尼尼套餐",
			Description: "含经典帕尼尼、薯条及中杯可乐。",
			Price:       35,
			Image:       "https://images.unsplash.com/photo-1484723051597-626151182a54?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:    "人气热卖",
		},
		{
			ID:          "5",
			Name:        "香脆鸡腿堡",
			Description: "整块无骨鸡腿肉，香脆多汁。",
			Price:       28,
			Image:       "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:    "人气热卖",
			Specifications: []Specification{
				{Name: "单点", Price: 28},
				{Name: "套餐(含薯条+可乐)", Price: 42},
			},
		},
		{
			ID:          "6",
			Name:        "美式炒蛋早餐盘",
			Description: "含炒蛋、培根、香肠和烤面包。",
			Price:       42,
			Image:       "https://images.unsplash.com/photo-1482049016688-2d3e1b311543?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:    "西式早餐",
		},
		{
			ID:          "7",
			Name:        "皮蛋瘦肉粥",
			Description: "绵密粥底，搭配皮蛋和瘦肉丝。",
			Price:       18,
			Image:       "https://images.unsplash.com/photo-1544034325-a75d50129c8c?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:    "中式早餐",
		},
		{
			ID:          "8",
			Name:        "单人炸鸡餐",
			Description: "两块吮指原味鸡 + 薯条 + 饮料。",
			Price:       45,
			Image:       "https://images.unsplash.com/photo-1562967914-608f82629710?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
			Category:    "OK餐单人餐",
			Specifications: []Specification{
				{Name: "配可乐", Price: 45},
				{Name: "配雪碧", Price: 45},
				{Name: "配橙汁(+¥2)", Price: 47},
			},
		},
	}
}
